/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ccittfax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func colorString(colors []Color) string {
	out := make([]byte, len(colors))
	for i, c := range colors {
		if c == Black {
			out[i] = 'B'
		} else {
			out[i] = 'W'
		}
	}
	return string(out)
}

func TestMaterializeEmptyIsAllWhite(t *testing.T) {
	got := Materialize(nil, 8)
	require.Equal(t, "WWWWWWWW", colorString(got))
}

// S3: current = [2, 5], width=8 -> WWBBBWWW.
func TestMaterializeS3(t *testing.T) {
	got := Materialize([]int{2, 5}, 8)
	require.Equal(t, "WWBBBWWW", colorString(got))
}

func TestMaterializeOddLengthTrailingRun(t *testing.T) {
	got := Materialize([]int{3}, 6)
	require.Equal(t, "WWWBBB", colorString(got))
}

func TestMaterializeAlwaysWidthLong(t *testing.T) {
	for _, transitions := range [][]int{nil, {1}, {1, 2, 3}, {4, 4, 4}} {
		got := Materialize(transitions, 10)
		require.Len(t, got, 10)
	}
}
