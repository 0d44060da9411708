package surface

import (
	"fmt"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/simd"
)

// surfaceFunc resolves one hit against a bundle
type surfaceFunc[M any] func(p *Params[M], hr core.HitRecord) Surface[M]

func resolvePlain[M any](p *Params[M], hr core.HitRecord) Surface[M] {
	return makeSurface(resolveNormal(p, hr), p.Materials[hr.GeomID])
}

func resolveTextured[M any](p *Params[M], hr core.HitRecord) Surface[M] {
	return makeTintedSurface(resolveNormal(p, hr), p.Materials[hr.GeomID], textureTint(p, hr))
}

func resolveColoredTextured[M any](p *Params[M], hr core.HitRecord) Surface[M] {
	return makeTintedSurface(resolveNormal(p, hr), p.Materials[hr.GeomID], colorTextureTint(p, hr))
}

func pipelineFor[M any](c Capability) surfaceFunc[M] {
	switch c {
	case TextureAndColor:
		return resolveColoredTextured[M]
	case TextureOnly:
		return resolveTextured[M]
	default:
		return resolvePlain[M]
	}
}

type options struct {
	logger core.Logger
}

// Option configures a Resolver
type Option func(*options)

// WithLogger sets the logger used while building the resolver.
// Resolution itself never logs.
func WithLogger(logger core.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Resolver resolves hits against one bundle. The pipeline for the bundle's
// capability is chosen once at construction. A Resolver is immutable and
// safe for concurrent use.
type Resolver[M any] struct {
	params     Params[M]
	capability Capability
	resolve    surfaceFunc[M]
	fallback   Surface[M]
}

// NewResolver validates p and selects its resolution pipeline. The arrays
// referenced by p must not be modified while the resolver is in use.
func NewResolver[M any](p Params[M], opts ...Option) (*Resolver[M], error) {
	o := options{logger: core.NopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid surface params: %w", err)
	}
	capability, _ := Classify(&p)

	o.logger.Printf("Surface resolver: %s layout, %d materials, capability %s, normals %s, colors %s\n",
		p.Layout(), len(p.Materials), capability, p.NormalBinding, p.ColorBinding)

	return &Resolver[M]{
		params:     p,
		capability: capability,
		resolve:    pipelineFor[M](capability),
		fallback:   DefaultSurface[M](capability),
	}, nil
}

// Capability returns the bundle's classification
func (r *Resolver[M]) Capability() Capability {
	return r.capability
}

// Params returns the bundle the resolver reads
func (r *Resolver[M]) Params() *Params[M] {
	return &r.params
}

// Default returns the surface given to lanes without a hit
func (r *Resolver[M]) Default() Surface[M] {
	return r.fallback
}

// Resolve returns the surface for a single hit. A record whose Hit flag is
// false yields Default.
func (r *Resolver[M]) Resolve(hr core.HitRecord) Surface[M] {
	if !hr.Hit {
		return r.fallback
	}
	return r.resolve(&r.params, hr)
}

// Resolve4 resolves a 4-wide packet lane by lane
func (r *Resolver[M]) Resolve4(hr simd.HitRecord4) Surface4[M] {
	var out [4]Surface[M]
	for i, lane := range hr.Unpack() {
		out[i] = r.Resolve(lane)
	}
	return Pack4(out)
}

// Resolve8 resolves an 8-wide packet lane by lane
func (r *Resolver[M]) Resolve8(hr simd.HitRecord8) Surface8[M] {
	var out [8]Surface[M]
	for i, lane := range hr.Unpack() {
		out[i] = r.Resolve(lane)
	}
	return Pack8(out)
}

// Resolve classifies p and resolves a single hit with the matching
// pipeline. It panics if p is not a supported combination. Callers
// resolving many hits against one bundle should build a Resolver.
func Resolve[M any](hr core.HitRecord, p *Params[M]) Surface[M] {
	capability := mustClassify(p)
	if !hr.Hit {
		return DefaultSurface[M](capability)
	}
	return pipelineFor[M](capability)(p, hr)
}

// Resolve4 is the 4-wide form of Resolve
func Resolve4[M any](hr simd.HitRecord4, p *Params[M]) Surface4[M] {
	capability := mustClassify(p)
	resolve := pipelineFor[M](capability)
	var out [4]Surface[M]
	for i, lane := range hr.Unpack() {
		if lane.Hit {
			out[i] = resolve(p, lane)
		} else {
			out[i] = DefaultSurface[M](capability)
		}
	}
	return Pack4(out)
}

// Resolve8 is the 8-wide form of Resolve
func Resolve8[M any](hr simd.HitRecord8, p *Params[M]) Surface8[M] {
	capability := mustClassify(p)
	resolve := pipelineFor[M](capability)
	var out [8]Surface[M]
	for i, lane := range hr.Unpack() {
		if lane.Hit {
			out[i] = resolve(p, lane)
		} else {
			out[i] = DefaultSurface[M](capability)
		}
	}
	return Pack8(out)
}

func mustClassify[M any](p *Params[M]) Capability {
	c, err := Classify(p)
	if err != nil {
		panic(err)
	}
	return c
}
