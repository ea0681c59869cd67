package search

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Title     string `json:"title"`
	TitleLink string `json:"titleLink"`
}

// fakeUDN serves the given pages (1-based) and records every requested page.
type fakeUDN struct {
	mu        sync.Mutex
	pages     map[int][]item
	failPages map[int]bool
	requested []int
	lastID    string
}

func (f *fakeUDN) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	f.mu.Lock()
	f.requested = append(f.requested, page)
	f.lastID = r.URL.Query().Get("id")
	f.mu.Unlock()

	if r.URL.Path != "/api/more" || r.URL.Query().Get("type") != "searchword" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if f.failPages[page] {
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"lists": f.pages[page]})
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&Config{BaseURL: srv.URL, MaxPages: DefaultMaxPages, Timeout: 2 * time.Second})
}

func TestClient_Search_CollectsPagesInOrder(t *testing.T) {
	udn := &fakeUDN{pages: map[int][]item{
		1: {{"蛋價上漲", "https://udn.com/news/story/1"}, {"菜價", "https://udn.com/news/story/2"}},
		2: {{"油價", "/news/story/3"}},
	}}
	client := newTestClient(t, udn)

	got, err := client.Search(t.Context(), "價格 雞蛋", 2)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, domain.Snapshot{Title: "蛋價上漲", URL: "https://udn.com/news/story/1"}, got[0])
	assert.Equal(t, "油價", got[2].Title)
	assert.Contains(t, got[2].URL, "/news/story/3")
	assert.Equal(t, []int{1, 2}, udn.requested)
	assert.Equal(t, "search:價格 雞蛋", udn.lastID)
}

func TestClient_Search_KeywordWithReservedCharacters(t *testing.T) {
	for _, keyword := range []string{"AT&T 價格", "C++ 油價", "a=b?c#d"} {
		udn := &fakeUDN{pages: map[int][]item{1: {{"t", "https://x/1"}}}}
		client := newTestClient(t, udn)

		_, err := client.Search(t.Context(), keyword, 1)
		require.NoError(t, err)

		assert.Equal(t, "search:"+keyword, udn.lastID, keyword)
		assert.Equal(t, []int{1}, udn.requested, keyword)
	}
}

func TestClient_Search_StopsAtFirstEmptyPage(t *testing.T) {
	udn := &fakeUDN{pages: map[int][]item{
		1: {{"a", "https://x/1"}},
		3: {{"never", "https://x/3"}},
	}}
	client := newTestClient(t, udn)

	got, err := client.Search(t.Context(), "價格", 9)
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, []int{1, 2}, udn.requested)
}

func TestClient_Search_EmptyResultIsNotAnError(t *testing.T) {
	client := newTestClient(t, &fakeUDN{})

	got, err := client.Search(t.Context(), "nothing", 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_Search_DropsIncompleteItems(t *testing.T) {
	udn := &fakeUDN{pages: map[int][]item{
		1: {{"", "https://x/1"}, {"no link", ""}, {"ok", "https://x/2"}},
	}}
	client := newTestClient(t, udn)

	got, err := client.Search(t.Context(), "價格", 1)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Title)
}

func TestClient_Search_SkipsFailingPage(t *testing.T) {
	udn := &fakeUDN{
		pages:     map[int][]item{2: {{"b", "https://x/2"}}},
		failPages: map[int]bool{1: true},
	}
	client := newTestClient(t, udn)

	got, err := client.Search(t.Context(), "價格", 2)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Title)
}

func TestClient_Search_AllPagesFailed(t *testing.T) {
	udn := &fakeUDN{failPages: map[int]bool{1: true, 2: true}}
	client := newTestClient(t, udn)

	_, err := client.Search(t.Context(), "價格", 2)

	var ne *apperr.NetworkError
	assert.True(t, errors.As(err, &ne))
}

func TestClient_Search_PagesAreCapped(t *testing.T) {
	pages := map[int][]item{}
	for i := 1; i <= 20; i++ {
		pages[i] = []item{{"t" + strconv.Itoa(i), "https://x/" + strconv.Itoa(i)}}
	}
	udn := &fakeUDN{pages: pages}
	client := newTestClient(t, udn)

	got, err := client.Search(t.Context(), "價格", 50)
	require.NoError(t, err)

	assert.Len(t, got, DefaultMaxPages)
	assert.Len(t, udn.requested, DefaultMaxPages)
}

func TestClient_Search_BlankKeyword(t *testing.T) {
	client := NewClient(&Config{BaseURL: "http://localhost", MaxPages: 1, Timeout: time.Second})

	_, err := client.Search(t.Context(), "  ", 1)

	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
}
