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

func sfGeofence() []GeoCoord {
	var nw, ne, se, sw GeoCoord
	nw.SetDegrees(37.80, -122.45)
	ne.SetDegrees(37.80, -122.39)
	se.SetDegrees(37.74, -122.39)
	sw.SetDegrees(37.74, -122.45)
	return []GeoCoord{nw, ne, se, sw}
}

func TestPointInPolygonContainsCenter(t *testing.T) {
	var polygon GeoPolygon
	polygon.SetGeofence(sfGeofence())

	var center GeoCoord
	center.SetDegrees(37.77, -122.42)
	assert.True(t, pointInPolygon(&polygon, &center))

	var far GeoCoord
	far.SetDegrees(10, 10)
	assert.False(t, pointInPolygon(&polygon, &far))
}

func TestPointInPolygonExcludesHole(t *testing.T) {
	var polygon GeoPolygon
	polygon.SetGeofence(sfGeofence())

	var hn, he, hs, hw GeoCoord
	hn.SetDegrees(37.78, -122.43)
	he.SetDegrees(37.78, -122.41)
	hs.SetDegrees(37.76, -122.41)
	hw.SetDegrees(37.76, -122.43)
	polygon.AddHole([]GeoCoord{hn, he, hs, hw})

	var insideHole GeoCoord
	insideHole.SetDegrees(37.77, -122.42)
	assert.False(t, pointInPolygon(&polygon, &insideHole))

	var outsideHole GeoCoord
	outsideHole.SetDegrees(37.745, -122.445)
	assert.True(t, pointInPolygon(&polygon, &outsideHole))
}

func TestPolyfillStaysWithinMaxSizeAndInsidePolygon(t *testing.T) {
	var polygon GeoPolygon
	polygon.SetGeofence(sfGeofence())

	res := 7
	cells := Polyfill(&polygon, res)
	require.NotEmpty(t, cells)
	assert.LessOrEqual(t, len(cells), MaxPolyfillSize(&polygon, res))

	for _, c := range cells {
		var g GeoCoord
		H3ToGeo(c, &g)
		assert.True(t, pointInPolygon(&polygon, &g))
	}
}

func TestCellsToLinkedGeoPolygonEmptyInput(t *testing.T) {
	out := CellsToLinkedGeoPolygon(nil)
	assert.Empty(t, out.Loops)
}

func TestCellsToLinkedGeoPolygonProducesClosedLoop(t *testing.T) {
	var polygon GeoPolygon
	polygon.SetGeofence(sfGeofence())

	res := 7
	cells := Polyfill(&polygon, res)
	require.NotEmpty(t, cells)

	linked := CellsToLinkedGeoPolygon(cells)
	require.NotEmpty(t, linked.Loops)

	for _, loop := range linked.Loops {
		require.GreaterOrEqual(t, len(loop), 3)
		assert.True(t, geoAlmostEqual(&loop[0], &loop[len(loop)-1]))
	}
}
