package ingest

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
)

type Classifier interface {
	Classify(ctx context.Context, title, topic string) (domain.Relevance, error)
}

type Extractor interface {
	Extract(ctx context.Context, url string) (*domain.Page, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, body string) (*domain.Summary, error)
}

// analyzer runs the stages shared by scheduled and on-demand ingestion.
type analyzer struct {
	classifier Classifier
	extractor  Extractor
	summarizer Summarizer
}

// analyze stops at StageSummarized on success, otherwise at the failing or rejecting stage.
func (a analyzer) analyze(ctx context.Context, snap domain.Snapshot, topic string) Outcome {
	out := Outcome{Snapshot: snap, Stage: StageFound}

	relevance, err := a.classifier.Classify(ctx, snap.Title, topic)
	if err != nil {
		out.Stage, out.Err = StageClassificationFailed, err
		return out
	}
	out.Stage = StageClassified
	if !relevance.Advances() {
		out.Stage = StageRejected
		return out
	}

	page, err := a.extractor.Extract(ctx, snap.URL)
	if err != nil {
		out.Stage, out.Err = StageExtractionFailed, err
		return out
	}
	out.Stage, out.Page = StageExtracted, page

	summary, err := a.summarizer.Summarize(ctx, page.Body())
	if err != nil {
		out.Stage, out.Err = StageSummarizationFailed, err
		return out
	}
	out.Stage, out.Summary = StageSummarized, summary

	return out
}

func logOutcome(pipeline string, o Outcome) {
	attrs := []any{
		"pipeline", pipeline,
		"stage", o.Stage,
		"url", o.Snapshot.URL,
		"title", o.Snapshot.Title,
	}
	if o.Err != nil {
		slog.Warn("Candidate dropped", append(attrs, "error", o.Err)...)
		return
	}
	slog.Info("Candidate finished", attrs...)
}
