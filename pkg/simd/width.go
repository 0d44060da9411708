package simd

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Width is a packet width in lanes
type Width int

const (
	Width1 Width = 1
	Width4 Width = 4
	Width8 Width = 8
)

// String implements fmt.Stringer
func (w Width) String() string {
	return fmt.Sprintf("x%d", int(w))
}

// Valid reports whether w is a supported packet width
func (w Width) Valid() bool {
	return w == Width1 || w == Width4 || w == Width8
}

// NativeWidth returns the widest packet the running CPU handles well.
// 8 lanes need AVX on amd64; everything else uses 4.
func NativeWidth() Width {
	if MaxWidth >= Width8 && runtime.GOARCH == "amd64" && cpu.X86.HasAVX {
		return Width8
	}
	return Width4
}

// Clamp limits w to what this build supports
func (w Width) Clamp() Width {
	switch {
	case w <= Width1:
		return Width1
	case w < Width8 || MaxWidth < Width8:
		return Width4
	default:
		return Width8
	}
}
