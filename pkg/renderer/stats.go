package renderer

import (
	"time"

	"github.com/google/uuid"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	JobID       uuid.UUID     // Identifies the render job in logs
	TotalPixels int           // Total number of pixels rendered
	Rays        int           // Primary rays traced
	Hits        int           // Primary rays that hit geometry
	Packets     int           // Ray packets traced (0 for scalar rendering)
	Duration    time.Duration // Wall time of the whole render
}

// Merge accumulates the counters of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.Rays += other.Rays
	s.Hits += other.Hits
	s.Packets += other.Packets
}

// HitRatio returns the fraction of rays that hit geometry
func (s RenderStats) HitRatio() float64 {
	if s.Rays == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Rays)
}
