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
)

func TestBaseCellPentagonCount(t *testing.T) {
	count := 0
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if _isBaseCellPentagon(bc) {
			count++
		}
	}
	assert.Equal(t, NUM_PENTAGONS, count)
}

func TestBaseCellPolarPentagons(t *testing.T) {
	assert.True(t, _isBaseCellPolarPentagon(4))
	assert.True(t, _isBaseCellPolarPentagon(117))
	assert.False(t, _isBaseCellPolarPentagon(0))
}

func TestBaseCellNeighborsCenterIsSelf(t *testing.T) {
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		assert.Equal(t, bc, baseCellNeighbors[bc][CENTER_DIGIT])
	}
}

func TestBaseCellNeighborsPentagonHasNoKNeighbor(t *testing.T) {
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if !_isBaseCellPentagon(bc) {
			continue
		}
		assert.Equal(t, INVALID_BASE_CELL, baseCellNeighbors[bc][K_AXES_DIGIT])
	}
}
