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

// INVALID_VERTEX_NUM marks a direction that has no corresponding topological
// vertex (CENTER_DIGIT, or the deleted K axis of a pentagon).
const INVALID_VERTEX_NUM = -1

// directionToVertexNumHex maps an ijk+ neighbor direction to the index, in
// CCW boundary order, of the vertex shared by the origin cell and that
// neighbor, for hexagon cells.
var directionToVertexNumHex = [NUM_DIGITS]int{
	INVALID_VERTEX_NUM, // CENTER
	3,                  // K
	1,                  // J
	2,                  // JK
	5,                  // I
	4,                  // IK
	0,                  // IJ
}

// directionToVertexNumPent is the pentagon analogue of
// directionToVertexNumHex; the K axis is deleted on a pentagon so it carries
// no vertex.
var directionToVertexNumPent = [NUM_DIGITS]int{
	INVALID_VERTEX_NUM, // CENTER
	INVALID_VERTEX_NUM, // K (deleted)
	1,                  // J
	2,                  // JK
	4,                  // I
	3,                  // IK
	0,                  // IJ
}

// vertexNumForDirection returns the vertex number (an index into the cell's
// CCW geo boundary) at the intersection of origin and its neighbor in the
// given direction, or INVALID_VERTEX_NUM when direction names no boundary
// vertex.
func vertexNumForDirection(origin H3Index, direction int) int {
	if direction <= int(CENTER_DIGIT) || direction >= NUM_DIGITS {
		return INVALID_VERTEX_NUM
	}
	if H3IsPentagon(origin) {
		if direction == int(K_AXES_DIGIT) {
			return INVALID_VERTEX_NUM
		}
		return directionToVertexNumPent[direction]
	}
	return directionToVertexNumHex[direction]
}

// directionForVertexNum is the inverse lookup: given a vertex number, returns
// the neighbor direction whose edge boundary starts at that vertex, or
// INVALID_DIGIT if the cell has no such vertex (e.g. the deleted K vertex on
// a pentagon).
func directionForVertexNum(origin H3Index, vertexNum int) Direction {
	table := &directionToVertexNumHex
	if H3IsPentagon(origin) {
		table = &directionToVertexNumPent
	}
	for dir := CENTER_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
		if table[dir] == vertexNum {
			return dir
		}
	}
	return INVALID_DIGIT
}

// CellToVertex composes a canonical vertex index (mode 4) identifying the
// topological vertex of cell at boundary position vertexNum. The owning
// cell recorded in the index is always the lowest-numbered of the 2 (hexagon
// edge) or 3 (hexagon corner) cells that share the vertex, following the
// same canonicalization the directed-edge mode uses for its origin.
func CellToVertex(cell H3Index, vertexNum int) H3Index {
	if vertexNum < 0 || vertexNum >= NUM_HEX_VERTS {
		return H3_NULL
	}
	if H3IsPentagon(cell) && vertexNum >= NUM_PENT_VERTS {
		return H3_NULL
	}

	owner := cell
	ownerVertexNum := vertexNum
	for dir := K_AXES_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
		if vertexNumForDirection(cell, int(dir)) != vertexNum {
			continue
		}
		rotations := 0
		neighbor := h3NeighborRotations(cell, dir, &rotations)
		if neighbor == H3_NULL || neighbor >= owner {
			continue
		}

		// neighbor numbers its own boundary independently of cell's, so the
		// vertex must be renumbered in neighbor's frame: find the direction
		// pointing back from neighbor to cell and read its vertex number off
		// of that.
		for backDir := K_AXES_DIGIT; backDir < Direction(NUM_DIGITS); backDir++ {
			backRotations := 0
			if h3NeighborRotations(neighbor, backDir, &backRotations) != cell {
				continue
			}
			if n := vertexNumForDirection(neighbor, int(backDir)); n != INVALID_VERTEX_NUM {
				owner = neighbor
				ownerVertexNum = n
			}
			break
		}
	}

	out := owner
	H3_SET_MODE(&out, H3_VERTEX_MODE)
	H3_SET_RESERVED_BITS(&out, ownerVertexNum)
	return out
}

// VertexToPoint returns the geographic coordinates of a canonical vertex
// index.
func VertexToPoint(vertex H3Index, g *GeoCoord) bool {
	if H3_GET_MODE(vertex) != H3_VERTEX_MODE {
		return false
	}

	vertexNum := H3_GET_RESERVED_BITS(vertex)
	owner := vertex
	H3_SET_MODE(&owner, H3_HEXAGON_MODE)
	H3_SET_RESERVED_BITS(&owner, 0)

	var gb GeoBoundary
	isPentagon := H3IsPentagon(owner)
	if isPentagon && vertexNum >= NUM_PENT_VERTS {
		return false
	}

	var fijk FaceIJK
	_h3ToFaceIjk(owner, &fijk)
	res := H3_GET_RESOLUTION(owner)
	if isPentagon {
		_faceIjkPentToGeoBoundary(&fijk, res, vertexNum, 1, &gb)
	} else {
		_faceIjkToGeoBoundary(&fijk, res, vertexNum, 1, &gb)
	}
	if gb.numVerts < 1 {
		return false
	}
	*g = gb.verts[0]
	return true
}

// H3VertexIsValid reports whether vertex decodes to a legal canonical vertex
// index: mode 4, an owning cell that is itself valid, and a vertex number in
// range for that cell's shape.
func H3VertexIsValid(vertex H3Index) bool {
	if H3_GET_MODE(vertex) != H3_VERTEX_MODE {
		return false
	}
	vertexNum := H3_GET_RESERVED_BITS(vertex)
	owner := vertex
	H3_SET_MODE(&owner, H3_HEXAGON_MODE)
	H3_SET_RESERVED_BITS(&owner, 0)
	if !H3IsValid(owner) {
		return false
	}
	if H3IsPentagon(owner) {
		return vertexNum >= 0 && vertexNum < NUM_PENT_VERTS
	}
	return vertexNum >= 0 && vertexNum < NUM_HEX_VERTS
}
