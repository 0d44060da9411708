// Package surface turns traversal hit records into shading surfaces.
//
// A Surface carries everything a shader needs at a hit point: the shading
// normal, the material payload copied from the geometry's material array
// and, when the scene binds textures, a tint color. The attribute arrays
// are described by Params and are only ever read.
//
// Build a Resolver once per frame (or per scene) and call Resolve for
// single rays, Resolve4 or Resolve8 for packets. Construction classifies
// the bundle (see Classify) and validates it; every per-ray call after that
// is a pure function of the hit record and the bundle, safe to use from any
// number of goroutines.
//
// Packets are resolved lane by lane through the scalar pipeline and then
// packed, so the batched results are exactly the scalar results. Lanes
// whose hit flag is false receive DefaultSurface; shaders must gate on the
// packet's hit mask before reading them.
package surface
