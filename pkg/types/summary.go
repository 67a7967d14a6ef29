package types

// Outcome is what happened to a single render unit.
type Outcome string

const (
	OutcomeGenerated Outcome = "generated"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// UnitResult is the result of processing one RenderUnit.
type UnitResult struct {
	Path    string
	Label   string
	Outcome Outcome
	Err     error
}

// Summary aggregates the results of a generation run.
type Summary struct {
	Generated int
	Skipped   int
	Failed    int

	// Templates is the number of templates that passed validation and were rendered
	Templates int

	// DryRun is set when counts describe what would have happened
	DryRun bool

	// Issues collects every non-fatal error reported during the run
	Issues []error
}

// Add folds a unit result into the summary.
func (s *Summary) Add(r UnitResult) {
	switch r.Outcome {
	case OutcomeGenerated:
		s.Generated++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
		if r.Err != nil {
			s.Issues = append(s.Issues, r.Err)
		}
	}
}

// Report appends a non-fatal error to the summary.
func (s *Summary) Report(err error) {
	if err != nil {
		s.Issues = append(s.Issues, err)
	}
}

// Total returns the number of units processed.
func (s Summary) Total() int {
	return s.Generated + s.Skipped + s.Failed
}
