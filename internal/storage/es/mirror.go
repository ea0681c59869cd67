package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

const analyzerName = "news_analyzer"

// Mirror copies persisted articles into an Elasticsearch index. The relational
// store stays the source of truth.
type Mirror struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewMirror(ctx context.Context, config ClientConfig) (*Mirror, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	m := &Mirror{
		client:    client,
		indexName: config.IndexName,
	}
	if err := m.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return m, nil
}

func (m *Mirror) Index(ctx context.Context, article domain.Article) error {
	if article.ID == uuid.Nil {
		return fmt.Errorf("mirror %s: article has no id", article.URL)
	}
	doc := toDocument(article)

	res, err := m.client.Index(m.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}

	slog.Debug("document indexed", "id", doc.ID, "index", m.indexName, "result", res.Result)
	return nil
}

// Backfill bulk-indexes articles that are already persisted.
func (m *Mirror) Backfill(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         m.indexName,
		Client:        m.client,
		NumWorkers:    2,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64
	for _, article := range articles {
		doc := toDocument(article)
		body, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(body),
			OnSuccess: func(context.Context, esutil.BulkIndexerItem, esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(_ context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Backfill completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(articles),
		"index", m.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d articles", n, len(articles))
	}
	return nil
}

func (m *Mirror) EnsureIndex(ctx context.Context) error {
	exists, err := m.client.Indices.Exists(m.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", m.indexName)
		return nil
	}

	settings := types.IndexSettings{
		Analysis: &types.IndexSettingsAnalysis{
			Analyzer: map[string]types.Analyzer{
				analyzerName: types.StandardAnalyzer{
					Stopwords: []string{"_none_"},
				},
			},
		},
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":           types.NewKeywordProperty(),
			"url":          types.NewKeywordProperty(),
			"title":        textProperty(true),
			"published":    types.NewKeywordProperty(),
			"published_at": types.NewDateProperty(),
			"content":      textProperty(false),
			"summary":      textProperty(false),
			"reason":       textProperty(false),
			"created_at":   types.NewDateProperty(),
			"indexed_at":   types.NewDateProperty(),
		},
	}

	res, err := m.client.Indices.Create(m.indexName).
		Settings(&settings).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", m.indexName)
	return nil
}

func textProperty(withKeyword bool) types.Property {
	analyzer := analyzerName
	prop := types.NewTextProperty()
	prop.Analyzer = &analyzer
	if withKeyword {
		prop.Fields = map[string]types.Property{
			"keyword": types.NewKeywordProperty(),
		}
	}
	return prop
}

// Count returns the number of mirrored documents.
func (m *Mirror) Count(ctx context.Context) (int64, error) {
	if _, err := m.client.Indices.Refresh().Index(m.indexName).Do(ctx); err != nil {
		return 0, fmt.Errorf("failed to refresh index: %w", err)
	}
	res, err := m.client.Count().Index(m.indexName).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return res.Count, nil
}
