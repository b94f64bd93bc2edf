package convert

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the typed enumeration of final run result states.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeWarning Outcome = "warning"
	OutcomeFailed  Outcome = "failed"
)

// Report captures metrics about a conversion run. It is returned from Run as
// an explicit value; the pipeline keeps no ambient counters.
type Report struct {
	RunID string
	Start time.Time
	End   time.Time

	NotesDiscovered int
	NotesConverted  int
	NotesFailed     int
	ImagesCopied    int
	ImagesMissing   int

	// PostsBySlug counts writes per slug; a value above 1 means a later
	// note overwrote an earlier one (accepted last-wins behavior).
	PostsBySlug map[string]int

	Warnings []error
}

// NewReport stamps a fresh report with a run ID and start time.
func NewReport() *Report {
	return &Report{
		RunID:       uuid.NewString(),
		Start:       time.Now(),
		PostsBySlug: make(map[string]int),
	}
}

// Finish records the end timestamp.
func (r *Report) Finish() {
	r.End = time.Now()
}

// AddWarning records a non-fatal issue.
func (r *Report) AddWarning(err error) {
	if err != nil {
		r.Warnings = append(r.Warnings, err)
	}
}

// Duration reports wall-clock run time.
func (r *Report) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Outcome derives the overall run state: failed when nothing converted but
// notes were found, warning when any note failed or image went missing,
// success otherwise.
func (r *Report) Outcome() Outcome {
	switch {
	case r.NotesDiscovered > 0 && r.NotesConverted == 0:
		return OutcomeFailed
	case r.NotesFailed > 0 || r.ImagesMissing > 0 || len(r.Warnings) > 0:
		return OutcomeWarning
	default:
		return OutcomeSuccess
	}
}
