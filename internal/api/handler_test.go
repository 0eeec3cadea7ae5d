package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricelens/internal/model"
	"pricelens/internal/observability"
	"pricelens/internal/vision"
)

// minimal bytes http.DetectContentType recognises as a PNG
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

type fakeEstimator struct{}

func (fakeEstimator) Estimate(_ context.Context, item model.Item) model.PriceEstimate {
	return model.PriceEstimate{
		NewPriceRange:    "$30.00 - $90.00",
		UsedPriceRange:   "$10.00 - $20.00",
		SearchQuery:      item.Brand + "+" + item.Name,
		MarketplaceLinks: map[string]string{"amazon": "a", "ebay": "e"},
	}
}

type fakeAnalyzer struct {
	items []model.DetectedItem
	err   error
	mime  string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ []byte, mimeType string) ([]model.DetectedItem, error) {
	f.mime = mimeType
	return f.items, f.err
}

func multipartRequest(t *testing.T, field string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestEstimateEndpoint(t *testing.T) {
	router := NewRouter(&fakeAnalyzer{}, fakeEstimator{}, 2)

	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(`{"name":"Air Max","type":"sneakers","brand":"Nike"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var est model.PriceEstimate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &est))
	assert.Equal(t, "Nike+Air Max", est.SearchQuery)
	assert.Equal(t, "$10.00 - $20.00", est.UsedPriceRange)
	assert.Contains(t, rec.Body.String(), `"marketplace_links"`)
}

func TestEstimateEndpointRejectsBadInput(t *testing.T) {
	router := NewRouter(&fakeAnalyzer{}, fakeEstimator{}, 2)

	for _, body := range []string{`{not json`, `{"name":"  "}`} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	analyzer := &fakeAnalyzer{items: []model.DetectedItem{
		{ItemName: "Air Max", Details: model.ItemDetails{Type: "sneakers", Brand: "Nike", IsMainFocus: true}},
		{ItemName: "sock", Details: model.ItemDetails{Type: "clothing"}},
	}}
	router := NewRouter(analyzer, fakeEstimator{}, 2)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, "image", pngBytes))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", analyzer.mime)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Air Max", resp.Items[0].Item.ItemName)
	assert.Equal(t, "✓", resp.Items[0].Item.MainFocus)
	assert.Equal(t, "Nike+Air Max", resp.Items[0].Estimate.SearchQuery)
	assert.Equal(t, "+sock", resp.Items[1].Estimate.SearchQuery)
}

func TestAnalyzeEndpointErrors(t *testing.T) {
	tests := []struct {
		name     string
		analyzer *fakeAnalyzer
		req      func(t *testing.T) *http.Request
		status   int
	}{
		{
			name:     "not multipart",
			analyzer: &fakeAnalyzer{},
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("x"))
			},
			status: http.StatusBadRequest,
		},
		{
			name:     "wrong field",
			analyzer: &fakeAnalyzer{},
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, "file", pngBytes) },
			status:   http.StatusBadRequest,
		},
		{
			name:     "not an image",
			analyzer: &fakeAnalyzer{},
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, "image", []byte("hello world")) },
			status:   http.StatusUnsupportedMediaType,
		},
		{
			name:     "analyzer failure",
			analyzer: &fakeAnalyzer{err: errors.New("quota exceeded")},
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, "image", pngBytes) },
			status:   http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewRouter(tt.analyzer, fakeEstimator{}, 1).ServeHTTP(rec, tt.req(t))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestAnalyzeEndpointNoItems(t *testing.T) {
	router := NewRouter(&fakeAnalyzer{err: vision.ErrNoItems}, fakeEstimator{}, 1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, "image", pngBytes))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(&fakeAnalyzer{}, fakeEstimator{}, 1).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

type recordingEstimator struct {
	mu  sync.Mutex
	ids []string
}

func (r *recordingEstimator) Estimate(ctx context.Context, item model.Item) model.PriceEstimate {
	id, _ := observability.RequestID(ctx)
	r.mu.Lock()
	r.ids = append(r.ids, id)
	r.mu.Unlock()
	return model.PriceEstimate{SearchQuery: item.Name}
}

func TestAnalyzeEndpointSharesRequestID(t *testing.T) {
	analyzer := &fakeAnalyzer{items: []model.DetectedItem{{ItemName: "lamp"}, {ItemName: "chair"}}}
	est := &recordingEstimator{}

	rec := httptest.NewRecorder()
	NewRouter(analyzer, est, 2).ServeHTTP(rec, multipartRequest(t, "image", pngBytes))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.RequestID)
	assert.Equal(t, []string{resp.RequestID, resp.RequestID}, est.ids)
}
