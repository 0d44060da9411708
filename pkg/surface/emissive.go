package surface

import (
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/simd"
)

// HasEmissiveMaterial reports whether the surface's material emits light.
// Material representations without an emissive concept never do.
func HasEmissiveMaterial[M any](s Surface[M]) bool {
	return material.IsEmissive(s.Material)
}

// HasEmissiveMaterial4 answers HasEmissiveMaterial per lane
func HasEmissiveMaterial4[M any](s Surface4[M]) simd.Mask4 {
	var m simd.Mask4
	for i := range s.Material {
		m[i] = material.IsEmissive(s.Material[i])
	}
	return m
}

// HasEmissiveMaterial8 answers HasEmissiveMaterial per lane
func HasEmissiveMaterial8[M any](s Surface8[M]) simd.Mask8 {
	var m simd.Mask8
	for i := range s.Material {
		m[i] = material.IsEmissive(s.Material[i])
	}
	return m
}
