package engine

import (
	"time"

	"github.com/google/uuid"
)

// Run identifies a single invocation of the pipeline
type Run struct {
	ID        string    // Unique run identifier
	StartTime time.Time // When the run began
}

// NewRun creates a run with a fresh unique ID
func NewRun() *Run {
	return &Run{
		ID:        uuid.New().String(),
		StartTime: time.Now(),
	}
}

// Elapsed returns the time since the run began
func (r *Run) Elapsed() time.Duration {
	return time.Since(r.StartTime)
}
