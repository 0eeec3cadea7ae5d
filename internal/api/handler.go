package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pricelens/internal/model"
	"pricelens/internal/observability"
	"pricelens/internal/pricing"
	"pricelens/internal/vision"
)

const maxUploadSize = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

type AnalyzeResponse struct {
	RequestID string               `json:"request_id"`
	Items     []model.ItemEstimate `json:"items"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter wires the HTTP endpoints.
func NewRouter(analyzer vision.Analyzer, est pricing.Estimator, itemWorkers int) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /estimate", EstimateHandler(est))
	mux.Handle("POST /analyze", AnalyzeHandler(analyzer, est, itemWorkers))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}

// EstimateHandler prices a single item sent as JSON.
func EstimateHandler(est pricing.Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item model.Item
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if strings.TrimSpace(item.Name+item.Type+item.Brand) == "" {
			writeError(w, http.StatusBadRequest, "item needs at least one of name, type or brand")
			return
		}

		writeJSON(w, http.StatusOK, est.Estimate(r.Context(), item))
	}
}

// AnalyzeHandler takes an uploaded image, asks the vision model what is in it
// and prices every item found.
func AnalyzeHandler(analyzer vision.Analyzer, est pricing.Estimator, itemWorkers int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		logger := log.With().Str("request_id", requestID).Logger()
		ctx := observability.WithRequestID(r.Context(), requestID)

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "image is too large")
				return
			}
			writeError(w, http.StatusBadRequest, "expected a multipart form")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			writeError(w, http.StatusBadRequest, "multipart field \"image\" is required")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "could not read image")
			return
		}

		mimeType := http.DetectContentType(data)
		if !allowedImageTypes[mimeType] {
			writeError(w, http.StatusUnsupportedMediaType, "only png and jpeg images are supported")
			return
		}

		logger.Info().Str("file", header.Filename).Int("bytes", len(data)).Msg("analyzing image")

		items, err := analyzer.Analyze(ctx, data, mimeType)
		if err != nil {
			logger.Error().Err(err).Msg("image analysis failed")
			if errors.Is(err, vision.ErrNoItems) {
				writeJSON(w, http.StatusOK, AnalyzeResponse{RequestID: requestID, Items: []model.ItemEstimate{}})
				return
			}
			writeError(w, http.StatusBadGateway, "failed to analyze image")
			return
		}

		logger.Info().Int("items", len(items)).Msg("items detected")

		writeJSON(w, http.StatusOK, AnalyzeResponse{
			RequestID: requestID,
			Items:     pricing.EstimateAll(ctx, est, items, itemWorkers),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
