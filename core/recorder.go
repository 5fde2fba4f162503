package core

import "fmt"

// Recorder accumulates Records in strictly increasing Index order.
// It is created per solve and is not safe for concurrent use.
type Recorder struct {
	mode  HistoryMode
	hook  func(Record) error
	recs  []Record
	last  Record
	count int
}

// NewRecorder creates a Recorder. hook may be nil.
func NewRecorder(mode HistoryMode, hook func(Record) error) *Recorder {
	return &Recorder{mode: mode, hook: hook}
}

// Append stores r and notifies the hook. Records whose Index does not
// increase are rejected with ErrInvalidInput. A hook error aborts the solve
// and is returned wrapped with the record index.
func (r *Recorder) Append(rec Record) error {
	if r.count > 0 && rec.Index <= r.last.Index {
		return fmt.Errorf("%w: record index %d after %d", ErrInvalidInput, rec.Index, r.last.Index)
	}
	r.last = rec
	r.count++
	if r.mode == HistoryFull {
		r.recs = append(r.recs, rec)
	}
	if r.hook != nil {
		if err := r.hook(rec); err != nil {
			return fmt.Errorf("iteration hook at index %d: %w", rec.Index, err)
		}
	}
	return nil
}

// Len returns the number of Records appended so far, regardless of mode.
func (r *Recorder) Len() int { return r.count }

// Last returns the most recent Record and whether one exists.
func (r *Recorder) Last() (Record, bool) { return r.last, r.count > 0 }

// History returns a copy of the retained Records: every Record in full mode,
// only the final one in summary mode, nil when nothing was appended.
func (r *Recorder) History() []Record {
	if r.count == 0 {
		return nil
	}
	if r.mode == HistorySummary {
		return []Record{r.last}
	}
	out := make([]Record, len(r.recs))
	copy(out, r.recs)
	return out
}

// Result assembles the final Result from the recorded history.
func (r *Recorder) Result(m Method, root float64, iterations int, reason StopReason) Result {
	return Result{
		Method:     m,
		Root:       root,
		Iterations: iterations,
		Reason:     reason,
		History:    r.History(),
	}
}
