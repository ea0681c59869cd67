package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestRecordArticle(t *testing.T) {
	RecordArticle("test-articles", "persisted")
	RecordArticle("test-articles", "persisted")

	assert.Contains(t, scrape(t), `news_ingest_articles_total{pipeline="test-articles",stage="persisted"} 2`)
}

func TestRecordRun(t *testing.T) {
	RecordRun("test-run", nil, time.Second)
	RecordRun("test-run", errors.New("boom"), time.Second)

	body := scrape(t)
	assert.Contains(t, body, `news_ingest_runs_total{pipeline="test-run",status="success"} 1`)
	assert.Contains(t, body, `news_ingest_runs_total{pipeline="test-run",status="error"} 1`)
	assert.Contains(t, body, `news_ingest_run_duration_seconds_count{pipeline="test-run"} 2`)
}

func TestObserveHTTP(t *testing.T) {
	ObserveHTTP(http.MethodGet, "/health", http.StatusOK, 10*time.Millisecond)

	assert.Contains(t, scrape(t), `http_requests_total{method="GET",path="/health",status_code="200"} 1`)
}
