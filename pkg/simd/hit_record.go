package simd

import (
	"github.com/df07/go-surface-resolver/pkg/core"
)

// HitRecord4 is the traversal result of a 4-ray packet
type HitRecord4 struct {
	Hit    Mask4
	PrimID [4]int
	GeomID [4]int
	T      Float4
	U, V   Float4
	Point  Vec3x4
}

// Unpack converts the packet into four scalar hit records
func (h HitRecord4) Unpack() [4]core.HitRecord {
	var r [4]core.HitRecord
	for i := range r {
		r[i] = core.HitRecord{
			Hit:    h.Hit[i],
			PrimID: h.PrimID[i],
			GeomID: h.GeomID[i],
			T:      h.T[i],
			U:      h.U[i],
			V:      h.V[i],
			Point:  h.Point.Lane(i),
		}
	}
	return r
}

// PackHitRecords4 gathers four scalar hit records into a packet
func PackHitRecords4(hrs [4]core.HitRecord) HitRecord4 {
	var h HitRecord4
	for i, hr := range hrs {
		h.Hit[i] = hr.Hit
		h.PrimID[i] = hr.PrimID
		h.GeomID[i] = hr.GeomID
		h.T[i] = hr.T
		h.U[i] = hr.U
		h.V[i] = hr.V
		h.Point.SetLane(i, hr.Point)
	}
	return h
}

// HitRecord8 is the traversal result of an 8-ray packet
type HitRecord8 struct {
	Hit    Mask8
	PrimID [8]int
	GeomID [8]int
	T      Float8
	U, V   Float8
	Point  Vec3x8
}

// Unpack converts the packet into eight scalar hit records
func (h HitRecord8) Unpack() [8]core.HitRecord {
	var r [8]core.HitRecord
	for i := range r {
		r[i] = core.HitRecord{
			Hit:    h.Hit[i],
			PrimID: h.PrimID[i],
			GeomID: h.GeomID[i],
			T:      h.T[i],
			U:      h.U[i],
			V:      h.V[i],
			Point:  h.Point.Lane(i),
		}
	}
	return r
}

// PackHitRecords8 gathers eight scalar hit records into a packet
func PackHitRecords8(hrs [8]core.HitRecord) HitRecord8 {
	var h HitRecord8
	for i, hr := range hrs {
		h.Hit[i] = hr.Hit
		h.PrimID[i] = hr.PrimID
		h.GeomID[i] = hr.GeomID
		h.T[i] = hr.T
		h.U[i] = hr.U
		h.V[i] = hr.V
		h.Point.SetLane(i, hr.Point)
	}
	return h
}
