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

import "github.com/pkg/errors"

// ErrPentagonEncountered is returned by traversal helpers that refuse to
// guess across a pentagon distortion.
var ErrPentagonEncountered = errors.New("pentagon encountered")

// h3NeighborRotations returns the cell neighboring origin in the given ijk+
// direction. It decodes through FaceIJK rather than the bit-twiddling digit
// tables of the original implementation: origin is placed on its face via
// _h3ToFaceIjk (which already absorbs the Class II/III substrate dance and
// per-face overage), stepped by one unit in dir, re-adjusted for any face
// crossing the step caused, and re-encoded with _faceIjkToH3. When rotations
// is non-nil, *rotations is incremented once for each face crossing the step
// makes; it counts crossings, not the 60-degree rotation each crossing
// applies.
func h3NeighborRotations(origin H3Index, dir Direction, rotations *int) H3Index {
	if dir == CENTER_DIGIT {
		return origin
	}
	if dir < CENTER_DIGIT || dir >= Direction(NUM_DIGITS) {
		return H3_NULL
	}
	isPentagon := H3IsPentagon(origin)
	if isPentagon && dir == K_AXES_DIGIT {
		return H3_NULL
	}

	res := H3_GET_RESOLUTION(origin)

	var fijk FaceIJK
	_h3ToFaceIjk(origin, &fijk)
	_neighbor(&fijk.coord, dir)

	adjRes := res
	if isResClassIII(adjRes) {
		_downAp7r(&fijk.coord)
		adjRes++
	}

	pentLeading4 := isPentagon && dir == I_AXES_DIGIT
	for {
		overage := _adjustOverageClassII(&fijk, adjRes, pentLeading4, false)
		if overage != NEW_FACE {
			break
		}
		if rotations != nil {
			*rotations++
		}
		pentLeading4 = false
		if !isPentagon {
			break
		}
	}

	if adjRes != res {
		_upAp7r(&fijk.coord)
	}

	out := _faceIjkToH3(&fijk, res)
	if out == H3_NULL {
		return H3_NULL
	}
	if H3IsPentagon(out) && _h3LeadingNonZeroDigit(out) == K_AXES_DIGIT {
		return H3_NULL
	}
	return out
}

// MaxKringSize returns the maximum number of cells a k-ring of the given
// radius can contain, the hex number sequence 1 + 6*(k*(k+1)/2).
func MaxKringSize(k int) int {
	if k < 0 {
		return 0
	}
	return 1 + 3*k*(k+1)
}

// KRing produces the hexagon-distance-k neighborhood of origin, dense and
// unordered. It always runs the BFS form KRingDistances and returns only the
// distinct cells found, so the slice holds at most MaxKringSize(k) entries
// (fewer when a pentagon lies within range).
func KRing(origin H3Index, k int) []H3Index {
	out, _ := KRingDistances(origin, k)
	cells := make([]H3Index, len(out))
	for i, kd := range out {
		cells[i] = kd.Index
	}
	return cells
}

// KRingDistance pairs a cell with its grid distance from the KRingDistances
// origin.
type KRingDistance struct {
	Index    H3Index
	Distance int
}

// KRingDistances is the BFS form of KRing: it explicitly tracks the distance
// of each discovered cell from origin and dedupes via a hash set, so it never
// needs to special-case pentagons.
func KRingDistances(origin H3Index, k int) ([]KRingDistance, error) {
	if k < 0 {
		return nil, errors.New("negative k")
	}

	visited := make(map[H3Index]int, MaxKringSize(k))
	visited[origin] = 0
	frontier := []H3Index{origin}

	for d := 0; d < k; d++ {
		next := make([]H3Index, 0, len(frontier)*2)
		for _, cell := range frontier {
			for dir := K_AXES_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
				rotations := 0
				neighbor := h3NeighborRotations(cell, dir, &rotations)
				if neighbor == H3_NULL {
					continue
				}
				if _, ok := visited[neighbor]; ok {
					continue
				}
				visited[neighbor] = d + 1
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	out := make([]KRingDistance, 0, len(visited))
	for cell, dist := range visited {
		out = append(out, KRingDistance{Index: cell, Distance: dist})
	}
	return out, nil
}

// hexRingDirections is the fixed direction sequence used to walk a single
// ring at a fast path: after one step outward along K_AXES_DIGIT, k steps
// along each of the six ring edges.
var hexRingDirections = [6]Direction{
	I_AXES_DIGIT, IJ_AXES_DIGIT, J_AXES_DIGIT,
	JK_AXES_DIGIT, K_AXES_DIGIT, IK_AXES_DIGIT,
}

// HexRange attempts the fixed-direction-sequence ring walk used by the
// original implementation's "unsafe" fast path. It returns
// ErrPentagonEncountered the moment a step crosses a pentagon, signaling the
// caller to retry via KRing/KRingDistances instead of risking an incomplete
// or incorrectly ordered result.
func HexRange(origin H3Index, k int) ([]H3Index, error) {
	out := make([]H3Index, 0, MaxKringSize(k))
	out = append(out, origin)

	if k == 0 {
		return out, nil
	}

	ring := origin
	rotations := 0
	ring = h3NeighborRotations(ring, K_AXES_DIGIT, &rotations)
	if ring == H3_NULL {
		return nil, ErrPentagonEncountered
	}

	for radius := 1; radius <= k; radius++ {
		if radius > 1 {
			rotations = 0
			ring = h3NeighborRotations(ring, K_AXES_DIGIT, &rotations)
			if ring == H3_NULL {
				return nil, ErrPentagonEncountered
			}
		}

		cell := ring
		for face := 0; face < 6; face++ {
			dir := hexRingDirections[face]
			for s := 0; s < radius; s++ {
				if H3IsPentagon(cell) {
					return nil, ErrPentagonEncountered
				}
				out = append(out, cell)
				rotations = 0
				cell = h3NeighborRotations(cell, dir, &rotations)
				if cell == H3_NULL {
					return nil, ErrPentagonEncountered
				}
			}
		}
		ring = cell
	}

	return out, nil
}

// HexRangeOrKRing runs HexRange and transparently falls back to the safe
// (but unordered) KRing form if a pentagon defeats the fast path.
func HexRangeOrKRing(origin H3Index, k int) []H3Index {
	if out, err := HexRange(origin, k); err == nil {
		return out
	}
	return KRing(origin, k)
}

// h3DistanceBFS returns the grid distance between two cells at the same
// resolution by a breadth-first search (KRingDistances) from a out to
// MaxDistanceSearchRadius, or an error if b is not found within it.
func h3DistanceBFS(a, b H3Index) (int, error) {
	if a == b {
		return 0, nil
	}
	if H3_GET_RESOLUTION(a) != H3_GET_RESOLUTION(b) {
		return -1, errors.New("mismatched resolution")
	}
	kds, err := KRingDistances(a, MaxDistanceSearchRadius)
	if err != nil {
		return -1, err
	}
	for _, kd := range kds {
		if kd.Index == b {
			return kd.Distance, nil
		}
	}
	return -1, errors.New("destination outside search radius")
}

// MaxDistanceSearchRadius bounds the BFS fallback used by h3DistanceBFS; it
// is generous enough for any pair of cells that are plausibly "nearby" but
// keeps a runaway search from scanning the whole grid.
const MaxDistanceSearchRadius = 32
