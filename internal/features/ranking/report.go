package ranking

import "time"

// BatchReport summarizes one full profile recomputation pass. Per-record
// problems are counted here rather than surfaced as errors; only
// batch-level failures (store unreachable) abort a pass.
type BatchReport struct {
	UsersProcessed  int
	ProfilesWritten int
	EventsProcessed int
	EventsSkipped   int
	Duration        time.Duration
}
