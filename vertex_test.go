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

func TestVertexNumForDirectionInvalidCases(t *testing.T) {
	var g GeoCoord
	g.SetDegrees(37.77, -122.42)
	cell := GeoToH3(&g, 9)
	require.NotEqual(t, H3_NULL, cell)

	assert.Equal(t, INVALID_VERTEX_NUM, vertexNumForDirection(cell, int(CENTER_DIGIT)))
	assert.Equal(t, INVALID_VERTEX_NUM, vertexNumForDirection(cell, NUM_DIGITS))
}

func TestCellToVertexRoundTrip(t *testing.T) {
	var g GeoCoord
	g.SetDegrees(37.77, -122.42)
	cell := GeoToH3(&g, 9)
	require.NotEqual(t, H3_NULL, cell)

	for dir := K_AXES_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
		vnum := vertexNumForDirection(cell, int(dir))
		if vnum == INVALID_VERTEX_NUM {
			continue
		}
		vertex := CellToVertex(cell, vnum)
		require.NotEqual(t, H3_NULL, vertex)
		assert.True(t, H3VertexIsValid(vertex))

		var p GeoCoord
		ok := VertexToPoint(vertex, &p)
		assert.True(t, ok)
	}
}

func TestH3VertexIsValidRejectsWrongMode(t *testing.T) {
	var g GeoCoord
	g.SetDegrees(37.77, -122.42)
	cell := GeoToH3(&g, 9)
	require.NotEqual(t, H3_NULL, cell)
	assert.False(t, H3VertexIsValid(cell))
}
