package surface

import "fmt"

// NormalBinding selects how a shading normal is derived for a hit
type NormalBinding uint8

const (
	// NormalsPerVertex interpolates Normals[Indices[k]] with the hit's barycentrics
	NormalsPerVertex NormalBinding = iota
	// NormalsPerFace reads Normals[PrimID]
	NormalsPerFace
	// NormalsPrecomputed uses the primitive's own geometric normal
	NormalsPrecomputed
)

func (b NormalBinding) String() string {
	switch b {
	case NormalsPerVertex:
		return "per-vertex"
	case NormalsPerFace:
		return "per-face"
	case NormalsPrecomputed:
		return "precomputed"
	default:
		return fmt.Sprintf("NormalBinding(%d)", uint8(b))
	}
}

// ColorBinding selects how a vertex color is fetched for a hit
type ColorBinding uint8

const (
	// ColorsPerVertex interpolates Colors[Indices[k]] with the hit's barycentrics
	ColorsPerVertex ColorBinding = iota
	// ColorsPerFace reads Colors[PrimID]
	ColorsPerFace
	// ColorsPerGeometry reads Colors[GeomID]
	ColorsPerGeometry
)

func (b ColorBinding) String() string {
	switch b {
	case ColorsPerVertex:
		return "per-vertex"
	case ColorsPerFace:
		return "per-face"
	case ColorsPerGeometry:
		return "per-geometry"
	default:
		return fmt.Sprintf("ColorBinding(%d)", uint8(b))
	}
}

// ParseNormalBinding parses the String form of a NormalBinding
func ParseNormalBinding(s string) (NormalBinding, error) {
	for _, b := range []NormalBinding{NormalsPerVertex, NormalsPerFace, NormalsPrecomputed} {
		if b.String() == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown normal binding %q", s)
}

// ParseColorBinding parses the String form of a ColorBinding
func ParseColorBinding(s string) (ColorBinding, error) {
	for _, b := range []ColorBinding{ColorsPerVertex, ColorsPerFace, ColorsPerGeometry} {
		if b.String() == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown color binding %q", s)
}
