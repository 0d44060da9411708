package surface

import "fmt"

// Capability is the set of optional attributes a bundle provides
type Capability uint8

const (
	// NoExtras bundles have neither textures nor colors
	NoExtras Capability = iota
	// TextureOnly bundles have textures and no colors
	TextureOnly
	// TextureAndColor bundles have both textures and colors
	TextureAndColor
)

func (c Capability) String() string {
	switch c {
	case NoExtras:
		return "no-extras"
	case TextureOnly:
		return "texture"
	case TextureAndColor:
		return "texture+color"
	default:
		return fmt.Sprintf("Capability(%d)", uint8(c))
	}
}

// Tinted reports whether surfaces resolved under c carry a tint
func (c Capability) Tinted() bool {
	return c != NoExtras
}

// Classify maps a bundle to its capability. Colors without textures is not
// a supported combination.
func Classify[M any](p *Params[M]) (Capability, error) {
	hasTextures := len(p.Textures) > 0
	hasColors := len(p.Colors) > 0
	switch {
	case hasTextures && hasColors:
		return TextureAndColor, nil
	case hasTextures:
		return TextureOnly, nil
	case hasColors:
		return 0, ErrColorsWithoutTextures
	default:
		return NoExtras, nil
	}
}
