// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3go

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestH3DistanceToSelfIsZero(t *testing.T) {
	origin := seedOrigin(t, 9)
	assert.Equal(t, 0, H3Distance(origin, origin))
}

func TestH3DistanceToNeighborIsOne(t *testing.T) {
	origin := seedOrigin(t, 9)
	ring := KRing(origin, 1)

	var neighbor H3Index
	for _, n := range ring {
		if n != origin && n != H3_NULL {
			neighbor = n
			break
		}
	}
	require.NotEqual(t, H3Index(0), neighbor)
	assert.Equal(t, 1, H3Distance(origin, neighbor))
}

func TestH3LineMatchesDistanceAndEndpoints(t *testing.T) {
	origin := seedOrigin(t, 9)
	ring2 := KRing(origin, 2)

	var target H3Index
	for _, c := range ring2 {
		if H3Distance(origin, c) == 2 {
			target = c
			break
		}
	}
	require.NotEqual(t, H3Index(0), target)

	size := H3LineSize(origin, target)
	require.Greater(t, size, 0)

	var line []H3Index
	status := H3Line(origin, target, &line)
	require.Equal(t, 0, status)
	require.Len(t, line, size)
	assert.Equal(t, origin, line[0])
	assert.Equal(t, target, line[len(line)-1])

	for i := 1; i < len(line); i++ {
		assert.True(t, H3IndexesAreNeighbors(line[i-1], line[i]))
	}
}

func TestExperimentalLocalIjRoundTrip(t *testing.T) {
	origin := seedOrigin(t, 9)
	ring := KRing(origin, 1)

	var neighbor H3Index
	for _, n := range ring {
		if n != origin && n != H3_NULL {
			neighbor = n
			break
		}
	}
	require.NotEqual(t, H3Index(0), neighbor)

	var ij CoordIJ
	status := ExperimentalH3ToLocalIj(origin, neighbor, &ij)
	require.Equal(t, 0, status)

	var roundTripped H3Index
	status = ExperimentalLocalIjToH3(origin, &ij, &roundTripped)
	require.Equal(t, 0, status)
	assert.Equal(t, neighbor, roundTripped)
}
