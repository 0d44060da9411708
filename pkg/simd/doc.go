// Package simd provides fixed-width lane types for packet ray tracing.
//
// Lanes are plain fixed-size arrays so the Go compiler can keep them in
// registers; there is no assembly. Width 4 uses mgl64.Vec4 as its float
// lane, width 8 uses Float8. Batched hit records are stored as
// structure-of-arrays and converted to and from scalar records with
// Unpack and the Pack functions.
//
// The widest packet a build is expected to use is MaxWidth; NativeWidth
// refines it at runtime from the CPU feature set.
package simd
