// seehuhn.de/go/shade - a software triangle shader
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package texture

import (
	"log/slog"

	"seehuhn.de/go/shade"
)

// Size is a power of two which allows index computations by masking and
// shifting instead of division.
type Size struct {
	Value int // the size, a power of two
	Mask  int // Value - 1
	Bits  int // log2(Value)
}

// MaxBits is the base 2 logarithm of the largest supported size.
const MaxBits = 16

// MaxSize is the largest supported size.
const MaxSize = 1 << MaxBits

// sizes lists all supported sizes, in increasing order.
var sizes = func() [MaxBits + 1]Size {
	var res [MaxBits + 1]Size
	for bits := range res {
		v := 1 << bits
		res[bits] = Size{Value: v, Mask: v - 1, Bits: bits}
	}
	return res
}()

// Sizes returns all supported sizes, from 1 to [MaxSize].
func Sizes() []Size {
	return sizes[:]
}

// ClosestMatch returns the smallest supported size which is at least n.
// Values below 1 give size 1.  Values above [MaxSize] are clamped to
// MaxSize and a warning is logged.
func ClosestMatch(n int) Size {
	if n > MaxSize {
		shade.Logger().Warn("texture size too large, clamping",
			slog.Int("size", n), slog.Int("max", MaxSize))
		return sizes[MaxBits]
	}
	for _, s := range sizes {
		if s.Value >= n {
			return s
		}
	}
	return sizes[MaxBits]
}

// Match returns the supported size equal to n.  The second return value is
// false if n is not a power of two between 1 and [MaxSize].
func Match(n int) (Size, bool) {
	if n < 1 || n > MaxSize || n&(n-1) != 0 {
		return Size{}, false
	}
	return ClosestMatch(n), true
}
