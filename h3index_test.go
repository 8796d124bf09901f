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

func TestStringToH3RoundTrip(t *testing.T) {
	origin := seedOrigin(t, 9)
	str := H3ToString(origin)
	assert.Equal(t, origin, StringToH3(str))
}

func TestH3ToParentAndChildrenRoundTrip(t *testing.T) {
	origin := seedOrigin(t, 9)
	parent := H3ToParent(origin, 8)
	require.NotEqual(t, H3_NULL, parent)
	assert.Equal(t, 8, H3GetResolution(parent))

	var children []H3Index
	H3ToChildren(parent, 9, &children)
	require.NotEmpty(t, children)

	found := false
	for _, c := range children {
		if c == origin {
			found = true
		}
		assert.Equal(t, parent, H3ToParent(c, 8))
	}
	assert.True(t, found, "origin must be among its own parent's children")
}

func TestH3ToCenterChild(t *testing.T) {
	origin := seedOrigin(t, 7)
	center := H3ToCenterChild(origin, 9)
	require.NotEqual(t, H3_NULL, center)
	assert.Equal(t, origin, H3ToParent(center, 7))
}

func TestCompactUncompactRoundTrip(t *testing.T) {
	origin := seedOrigin(t, 7)
	parent := H3ToParent(origin, 6)

	var all []H3Index
	H3ToChildren(parent, 7, &all)
	require.NotEmpty(t, all)

	compacted, err := Compact(all)
	require.NoError(t, err)
	assert.Equal(t, []H3Index{parent}, compacted)

	uncompacted, err := Uncompact(compacted, 7)
	require.NoError(t, err)
	assert.ElementsMatch(t, all, uncompacted)
}

func TestMaxUncompactSizeRejectsFinerInput(t *testing.T) {
	origin := seedOrigin(t, 9)
	_, err := MaxUncompactSize([]H3Index{origin}, 7)
	assert.ErrorIs(t, err, ErrUncompactResExceeded)
}

func TestH3IsPentagonAndPentagonIndexCount(t *testing.T) {
	var out []H3Index
	GetPentagonIndexes(0, &out)
	assert.Equal(t, PentagonIndexCount(), len(out))
	for _, p := range out {
		assert.True(t, H3IsPentagon(p))
	}
}
