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

func seedOrigin(t *testing.T, res int) H3Index {
	t.Helper()
	var g GeoCoord
	g.SetDegrees(37.77, -122.42)
	origin := GeoToH3(&g, res)
	require.NotEqual(t, H3_NULL, origin)
	return origin
}

func TestMaxKringSize(t *testing.T) {
	assert.Equal(t, 1, MaxKringSize(0))
	assert.Equal(t, 7, MaxKringSize(1))
	assert.Equal(t, 19, MaxKringSize(2))
}

func TestKRingContainsOriginAndIsDense(t *testing.T) {
	origin := seedOrigin(t, 9)
	ring := KRing(origin, 2)
	assert.LessOrEqual(t, len(ring), MaxKringSize(2))

	found := false
	for _, c := range ring {
		if c == origin {
			found = true
			break
		}
	}
	assert.True(t, found, "kRing must include the origin cell")
}

func TestKRingDistanceOneIsExactlyTheSixNeighbors(t *testing.T) {
	origin := seedOrigin(t, 9)
	kds, err := KRingDistances(origin, 1)
	require.NoError(t, err)

	var atOne int
	for _, kd := range kds {
		if kd.Distance == 1 {
			atOne++
		}
		if kd.Index == origin {
			assert.Equal(t, 0, kd.Distance)
		}
	}
	assert.Equal(t, 6, atOne)
}

func TestNeighborsAreMutual(t *testing.T) {
	origin := seedOrigin(t, 9)
	ring := KRing(origin, 1)
	for _, n := range ring {
		if n == origin || n == H3_NULL {
			continue
		}
		assert.True(t, H3IndexesAreNeighbors(origin, n), "origin should be neighbor of %v", n)
		assert.True(t, H3IndexesAreNeighbors(n, origin), "%v should be neighbor of origin", n)
	}
}

func TestHexRangeOrKRingMatchesKRingSet(t *testing.T) {
	origin := seedOrigin(t, 9)
	fast := HexRangeOrKRing(origin, 1)
	safe := KRing(origin, 1)

	fastSet := map[H3Index]bool{}
	for _, c := range fast {
		fastSet[c] = true
	}
	for _, c := range safe {
		assert.True(t, fastSet[c], "safe ring member %v missing from fast result", c)
	}
}
