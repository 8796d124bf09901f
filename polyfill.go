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

import "math"

// Geofence is a closed loop of geographic vertices, CCW-wound, describing
// either the outer ring of a polygon or one of its holes.
type Geofence struct {
	verts []GeoCoord
}

// GeoPolygon is a single outer loop and zero or more hole loops.
type GeoPolygon struct {
	geofence Geofence
	holes    []Geofence
}

// SetGeofence sets the polygon's outer loop from a CCW-wound vertex slice.
func (p *GeoPolygon) SetGeofence(verts []GeoCoord) {
	p.geofence = Geofence{verts: verts}
}

// AddHole appends a hole loop to the polygon.
func (p *GeoPolygon) AddHole(verts []GeoCoord) {
	p.holes = append(p.holes, Geofence{verts: verts})
}

// bboxFromGeofence computes the bounding box of a single loop, correctly
// detecting the transmeridian case by checking for a longitude run greater
// than pi between consecutive vertices.
func bboxFromGeofence(fence *Geofence) BBox {
	var bbox BBox
	bbox.north = -M_PI_2
	bbox.south = M_PI_2
	bbox.east = -M_PI
	bbox.west = M_PI

	isTransmeridian := false
	minPosLon := M_2PI
	maxNegLon := -M_2PI
	allPositive := true
	allNegative := true

	for i, v := range fence.verts {
		if v.lat > bbox.north {
			bbox.north = v.lat
		}
		if v.lat < bbox.south {
			bbox.south = v.lat
		}

		if v.lon >= 0 {
			allNegative = false
		} else {
			allPositive = false
		}

		next := fence.verts[(i+1)%len(fence.verts)]
		if math.Abs(v.lon-next.lon) > M_PI {
			isTransmeridian = true
		}

		if v.lon >= 0 && v.lon < minPosLon {
			minPosLon = v.lon
		}
		if v.lon < 0 && v.lon > maxNegLon {
			maxNegLon = v.lon
		}
	}

	if isTransmeridian && !allPositive && !allNegative {
		bbox.east = maxNegLon
		bbox.west = minPosLon
	} else {
		for _, v := range fence.verts {
			if v.lon > bbox.east || bbox.east == -M_PI {
				bbox.east = v.lon
			}
			if v.lon < bbox.west || bbox.west == M_PI {
				bbox.west = v.lon
			}
		}
	}

	return bbox
}

// pointInsideGeofence is the ray-cast point-in-polygon test: a ray is cast
// due east from point and the loop's edge-crossing parity determines
// containment. The box is passed in so callers that already computed it
// (e.g. to reject points outside the bbox cheaply) don't recompute it.
func pointInsideGeofence(fence *Geofence, box *BBox, point *GeoCoord) bool {
	if !bboxContains(box, point) {
		return false
	}

	isTransmeridian := bboxIsTransmeridian(box)
	contains := false

	n := len(fence.verts)
	for i := 0; i < n; i++ {
		a := fence.verts[i]
		b := fence.verts[(i+1)%n]

		// Ray casting algo requires the second point to always be higher.
		// If A is higher, swap A and B.
		if a.lat > b.lat {
			a, b = b, a
		}

		// Skip if the ray is entirely above or below the segment.
		if point.lat < a.lat || point.lat >= b.lat {
			continue
		}

		aLon, bLon, pLon := a.lon, b.lon, point.lon
		if isTransmeridian {
			aLon = constrainLng(aLon + M_PI)
			bLon = constrainLng(bLon + M_PI)
			pLon = constrainLng(pLon + M_PI)
		}

		// Rule: y at or above segment start, y below segment end, and an
		// intersection with the ray to the east exists.
		if point.lat == a.lat && point.lat == b.lat {
			continue
		}

		slope := (bLon - aLon) / (b.lat - a.lat)
		crossLon := aLon + (point.lat-a.lat)*slope
		if crossLon > pLon {
			contains = !contains
		}
	}

	return contains
}

// pointInPolygon reports whether point lies inside polygon's outer loop and
// outside every hole.
func pointInPolygon(polygon *GeoPolygon, point *GeoCoord) bool {
	box := bboxFromGeofence(&polygon.geofence)
	if !pointInsideGeofence(&polygon.geofence, &box, point) {
		return false
	}
	for i := range polygon.holes {
		holeBox := bboxFromGeofence(&polygon.holes[i])
		if pointInsideGeofence(&polygon.holes[i], &holeBox, point) {
			return false
		}
	}
	return true
}

// MaxPolyfillSize returns an upper bound, derived from the bounding-box
// hexagon-count estimate bboxHexEstimate, on how many cells Polyfill can
// produce.
func MaxPolyfillSize(polygon *GeoPolygon, res int) int {
	box := bboxFromGeofence(&polygon.geofence)
	estimate := bboxHexEstimate(&box, res)
	// Fudge factor for hole geometry and boundary cells double-counted by
	// the area estimate.
	return estimate * 2
}

// Polyfill fills polygon with cells of the given resolution by a flood fill
// seeded at the cell containing the center of the outer loop's bounding box:
// each visited cell whose center passes pointInPolygon is accepted, and the
// fill expands only through accepted cells, so the full bbox is never
// rasterized. Cells not connected to the seed through accepted cells are not
// returned, and if the seed cell's center lies outside the polygon the
// result is empty.
func Polyfill(polygon *GeoPolygon, res int) []H3Index {
	box := bboxFromGeofence(&polygon.geofence)
	var center GeoCoord
	bboxCenter(&box, &center)

	seed := GeoToH3(&center, res)
	if seed == H3_NULL {
		return nil
	}

	visited := map[H3Index]bool{}
	result := make([]H3Index, 0, MaxPolyfillSize(polygon, res))
	frontier := []H3Index{seed}
	visited[seed] = true

	for len(frontier) > 0 {
		next := make([]H3Index, 0, len(frontier))
		for _, cell := range frontier {
			var g GeoCoord
			H3ToGeo(cell, &g)
			if !pointInPolygon(polygon, &g) {
				continue
			}
			result = append(result, cell)

			for dir := K_AXES_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
				rotations := 0
				neighbor := h3NeighborRotations(cell, dir, &rotations)
				if neighbor == H3_NULL || visited[neighbor] {
					continue
				}
				visited[neighbor] = true
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	return result
}

// LinkedGeoPolygon is a polygon expressed as linked loops of GeoCoord,
// built from a compact cell set's outer boundary by walking a VertexGraph:
// every directed edge between a filled cell and an unfilled (or absent)
// neighbor is added to the graph, then the graph is consumed loop by loop.
type LinkedGeoPolygon struct {
	Loops [][]GeoCoord
}

// CellsToLinkedGeoPolygon reconstructs the outer boundary (and hole
// boundaries) of a set of cells as closed loops of geographic vertices. It
// is the inverse of Polyfill: the input need not be contiguous, but
// duplicate cells or cells at mixed resolutions produce undefined loops.
func CellsToLinkedGeoPolygon(cells []H3Index) *LinkedGeoPolygon {
	if len(cells) == 0 {
		return &LinkedGeoPolygon{}
	}

	res := H3_GET_RESOLUTION(cells[0])
	members := make(map[H3Index]bool, len(cells))
	for _, c := range cells {
		members[c] = true
	}

	var graph VertexGraph
	initVertexGraph(&graph, len(cells)*NUM_HEX_VERTS+1, res)

	for _, cell := range cells {
		var gb GeoBoundary
		H3ToGeoBoundary(cell, &gb)

		isPentagon := H3IsPentagon(cell)
		numEdges := NUM_HEX_VERTS
		if isPentagon {
			numEdges = NUM_PENT_VERTS
		}

		for dir := 1; dir <= NUM_DIGITS-1; dir++ {
			if isPentagon && dir == int(K_AXES_DIGIT) {
				continue
			}
			rotations := 0
			neighbor := h3NeighborRotations(cell, Direction(dir), &rotations)
			if neighbor != H3_NULL && members[neighbor] {
				continue
			}

			vnum := vertexNumForDirection(cell, dir)
			if vnum == INVALID_VERTEX_NUM {
				continue
			}
			from := gb.verts[vnum]
			to := gb.verts[(vnum+1)%numEdges]
			addVertexNode(&graph, &from, &to)
		}
	}

	out := &LinkedGeoPolygon{}
	for {
		start := firstVertexNode(&graph)
		if start == nil {
			break
		}

		loop := []GeoCoord{start.from}
		current := start
		for {
			loop = append(loop, current.to)
			next := findNodeForVertex(&graph, &current.to)
			removeVertexNode(&graph, current)
			if next == nil || geoAlmostEqual(&current.to, &start.from) {
				break
			}
			current = next
		}
		out.Loops = append(out.Loops, loop)
	}

	return out
}
