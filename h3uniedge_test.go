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

func TestGetH3UnidirectionalEdgeRoundTrip(t *testing.T) {
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

	edge := GetH3UnidirectionalEdge(origin, neighbor)
	require.NotEqual(t, H3_NULL, edge)
	assert.True(t, H3UnidirectionalEdgeIsValid(edge))

	assert.Equal(t, origin, GetOriginH3IndexFromUnidirectionalEdge(edge))
	assert.Equal(t, neighbor, GetDestinationH3IndexFromUnidirectionalEdge(edge))

	pair := make([]H3Index, 2)
	GetH3IndexesFromUnidirectionalEdge(edge, &pair)
	assert.Equal(t, origin, pair[0])
	assert.Equal(t, neighbor, pair[1])
}

func TestGetH3UnidirectionalEdgeRejectsNonNeighbors(t *testing.T) {
	origin := seedOrigin(t, 9)
	ring2 := KRing(origin, 2)

	var farAway H3Index
	for _, c := range ring2 {
		if !H3IndexesAreNeighbors(origin, c) && c != origin {
			farAway = c
			break
		}
	}
	require.NotEqual(t, H3Index(0), farAway)
	assert.Equal(t, H3_NULL, GetH3UnidirectionalEdge(origin, farAway))
}

func TestGetH3UnidirectionalEdgesFromHexagon(t *testing.T) {
	origin := seedOrigin(t, 9)
	edges := make([]H3Index, 6)
	GetH3UnidirectionalEdgesFromHexagon(origin, &edges)

	count := 0
	for _, e := range edges {
		if e == H3_NULL {
			continue
		}
		count++
		assert.True(t, H3UnidirectionalEdgeIsValid(e))
		assert.Equal(t, origin, GetOriginH3IndexFromUnidirectionalEdge(e))
	}
	assert.Equal(t, 6, count, "a hexagon (non-pentagon) origin should produce 6 edges")
}

func TestGetH3UnidirectionalEdgeBoundaryHasVertices(t *testing.T) {
	origin := seedOrigin(t, 9)
	edges := make([]H3Index, 6)
	GetH3UnidirectionalEdgesFromHexagon(origin, &edges)

	var gb GeoBoundary
	GetH3UnidirectionalEdgeBoundary(edges[0], &gb)
	assert.GreaterOrEqual(t, gb.NumVerts(), 2)
}
