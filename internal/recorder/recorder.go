package recorder

import (
	"time"

	"CCIPulse/internal/model"
)

// Snapshot is one recorded dashboard refresh: the composed metrics for the
// default view plus the series the view was computed from.
type Snapshot struct {
	Period  string
	Source  string
	Metrics model.Metrics
	Summary string
	Series  model.Series
	TakenAt time.Time
}

// Recorder persists refresh history for later inspection.
type Recorder interface {
	RecordSnapshot(snap *Snapshot) error
	Close() error
}
