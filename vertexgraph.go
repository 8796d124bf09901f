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

// VertexNode is a single node in a vertex graph, part of a linked list.
type VertexNode struct {
	from GeoCoord
	to   GeoCoord
	next *VertexNode
}

// VertexGraph is a data structure to store a graph of vertices
type VertexGraph struct {
	buckets    []*VertexNode
	numBuckets int
	size       int
	res        int
}

// initVertexGraph prepares graph with numBuckets hash buckets, ready to
// store vertices from cells at the given resolution.
func initVertexGraph(graph *VertexGraph, numBuckets int, res int) {
	if numBuckets > 0 {
		graph.buckets = make([]*VertexNode, numBuckets)
	} else {
		graph.buckets = nil
	}

	graph.numBuckets = numBuckets
	graph.size = 0
	graph.res = res
}

// destroyVertexGraph empties graph by removing every node.
func destroyVertexGraph(graph *VertexGraph) {
	for {
		node := firstVertexNode(graph)
		if node == nil {
			break
		}
		removeVertexNode(graph, node)
	}
	graph.buckets = nil
}

// _hashVertex buckets a lat/lon vertex at a precision scaled to res.
//
// TODO: light testing suggests this might not be sufficient at resolutions
// finer than 10; revisit if collisions show up in practice.
func _hashVertex(vertex *GeoCoord, res int, numBuckets int) uint32 {
	// Simple hash: Take the sum of the lat and lon with a precision level
	// determined by the resolution, converted to int, modulo bucket count.
	return uint32(
		math.Mod(
			math.Abs(
				(vertex.lat+vertex.lon)*math.Pow(10, float64(15-res)),
			),
			float64(numBuckets),
		),
	)
}

func _initVertexNode(fromVtx *GeoCoord, toVtx *GeoCoord) *VertexNode {
	return &VertexNode{
		from: *fromVtx,
		to:   *toVtx,
		next: nil,
	}
}

// addVertexNode inserts an edge into graph, or returns the existing node if
// that exact edge is already present.
func addVertexNode(graph *VertexGraph, fromVtx *GeoCoord, toVtx *GeoCoord) *VertexNode {
	node := _initVertexNode(fromVtx, toVtx)
	index := _hashVertex(fromVtx, graph.res, graph.numBuckets)

	currentNode := graph.buckets[index]
	if currentNode == nil {
		graph.buckets[index] = node
	} else {
		for {
			if geoAlmostEqual(&currentNode.from, fromVtx) &&
				geoAlmostEqual(&currentNode.to, toVtx) {
				// already exists, bail
				return currentNode
			}
			if currentNode.next != nil {
				currentNode = currentNode.next
			}

			if currentNode.next == nil {
				break
			}
		}
		// Add the new node to the end of the list
		currentNode.next = node
	}
	graph.size++
	return node
}

// removeVertexNode splices node out of graph. node must not be used again
// afterward. Returns true if node could not be located (a failure), false on
// success — mirrors the original's 0/1 exit-code convention rather than a
// normal bool.
func removeVertexNode(graph *VertexGraph, node *VertexNode) bool {
	index := _hashVertex(&node.from, graph.res, graph.numBuckets)
	currentNode := graph.buckets[index]
	found := false
	if currentNode != nil {
		if currentNode == node {
			graph.buckets[index] = node.next
			found = true
		}
		// Look through the list
		for !found && currentNode.next != nil {
			if currentNode.next == node {
				// splice the node out
				currentNode.next = node.next
				found = true
			}
			currentNode = currentNode.next
		}
	}
	if found {
		node = nil
		graph.size--
		return false
	}
	// Failed to find the node
	return true
}

// findNodeForEdge looks up the node for the edge fromVtx->toVtx, or just
// fromVtx if toVtx is nil.
func findNodeForEdge(graph *VertexGraph, fromVtx *GeoCoord, toVtx *GeoCoord) *VertexNode {
	index := _hashVertex(fromVtx, graph.res, graph.numBuckets)
	node := graph.buckets[index]
	if node != nil {
		for {
			if geoAlmostEqual(&node.from, fromVtx) &&
				(toVtx == nil || geoAlmostEqual(&node.to, toVtx)) {
				return node
			}
			node = node.next

			if node == nil {
				break
			}
		}
	}
	return nil
}

// findNodeForVertex looks up any node starting at fromVtx, regardless of
// its destination.
func findNodeForVertex(graph *VertexGraph, fromVtx *GeoCoord) *VertexNode {
	return findNodeForEdge(graph, fromVtx, nil)
}

// firstVertexNode returns an arbitrary node still present in graph, or nil
// once it's empty. Used to drive destroyVertexGraph's drain loop.
func firstVertexNode(graph *VertexGraph) *VertexNode {
	for _, node := range graph.buckets {
		if node != nil {
			return node
		}
	}

	return nil
}
