//go:build amd64

package simd

// MaxWidth is the widest packet this build is configured for.
const MaxWidth = Width8
