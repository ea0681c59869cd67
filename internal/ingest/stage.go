package ingest

import (
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
)

// Stage is the position of a candidate in the ingestion state machine:
// Found -> Classified -> (Rejected | Extracted -> Summarized -> Persisted).
type Stage string

const (
	StageFound                Stage = "found"
	StageClassified           Stage = "classified"
	StageRejected             Stage = "rejected"
	StageExtracted            Stage = "extracted"
	StageSummarized           Stage = "summarized"
	StagePersisted            Stage = "persisted"
	StageClassificationFailed Stage = "classification_failed"
	StageExtractionFailed     Stage = "extraction_failed"
	StageSummarizationFailed  Stage = "summarization_failed"
	StageDuplicate            Stage = "duplicate"
	StagePersistFailed        Stage = "persist_failed"
)

func (s Stage) Failed() bool {
	switch s {
	case StageClassificationFailed, StageExtractionFailed, StageSummarizationFailed, StagePersistFailed:
		return true
	default:
		return false
	}
}

// Outcome is where one candidate stopped and what it carried at that point.
type Outcome struct {
	Snapshot domain.Snapshot
	Stage    Stage
	Page     *domain.Page
	Summary  *domain.Summary
	Article  *domain.Article
	Err      error
}

type Report struct {
	Pipeline string
	Keyword  string
	Pages    int
	Counts   map[Stage]int
	Duration time.Duration
}

func newReport(pipeline string, opts RunOptions) *Report {
	return &Report{
		Pipeline: pipeline,
		Keyword:  opts.Keyword,
		Pages:    opts.Pages,
		Counts:   make(map[Stage]int),
	}
}

func (r *Report) add(o Outcome) {
	r.Counts[o.Stage]++
}

func (r *Report) Count(s Stage) int {
	return r.Counts[s]
}

// Candidates is the number of snapshots that entered the pipeline.
func (r *Report) Candidates() int {
	n := 0
	for _, c := range r.Counts {
		n += c
	}
	return n
}

func (r *Report) Failed() int {
	n := 0
	for s, c := range r.Counts {
		if s.Failed() {
			n += c
		}
	}
	return n
}
