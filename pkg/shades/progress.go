package shades

import "log"

// A Stage is one step of the pipeline, as reported to a ProgressFunc.
type Stage int

const(
	StageDecode Stage = iota
	StageEstimate
	StageApply
	StageEncode
	StageDone
)

func (s Stage)String() string {
	switch s {
	case StageDecode:   return "Removing gamma correction..."
	case StageEstimate: return "Shades of Grey: estimating illuminant..."
	case StageApply:    return "Shades of Grey: applying illuminant..."
	case StageEncode:   return "Applying gamma correction..."
	case StageDone:     return "Shades of Grey: finalising..."
	}
	return "unknown stage"
}

// A ProgressFunc is told when each stage starts, and roughly how much
// of the whole job is done at that point (0.0 to 1.0). It may be nil.
type ProgressFunc func(stage Stage, fraction float64)

func (p *Pipeline)progress(s Stage, fraction float64) {
	if p.Verbosity > 0 {
		log.Printf("[%3.0f%%] %s\n", fraction*100, s)
	}
	if p.Progress != nil {
		p.Progress(s, fraction)
	}
}
