package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
// It is the only mutable state shared across files, updated by the single
// controlling goroutine after each child process exits.
type RunStats struct {
	Total            int
	Current          int
	Converted        int
	Skipped          int
	Failed           int
	TotalInputBytes  int64
	TotalOutputBytes int64
}

// SpaceSaved returns the aggregate byte difference between inputs and
// outputs. Positive means the outputs are smaller; negative means they grew.
func (s *RunStats) SpaceSaved() int64 {
	return s.TotalInputBytes - s.TotalOutputBytes
}
