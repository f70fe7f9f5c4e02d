package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/outfit-curator/internal/form"
	"github.com/jonathan/outfit-curator/internal/rendering"
	"github.com/jonathan/outfit-curator/internal/server/middleware"
	"github.com/jonathan/outfit-curator/internal/types"
	"go.uber.org/zap"
)

// maxSubmissionBytes bounds the size of a posted form.
const maxSubmissionBytes = 4 << 20

// POST /ui/recommend?fragment=results renders the results panel without the page.
const (
	fragmentParam   = "fragment"
	fragmentResults = "results"
)

// HealthResponse represents the response for /health
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// SubmissionRequest is the JSON form of a submission. Inventory may be the
// textarea text as a string or the array itself; MaxOutfits may be a string or a number.
type SubmissionRequest struct {
	OccasionType     string          `json:"occasion_type"`
	Weather          string          `json:"weather"`
	MaxOutfits       json.RawMessage `json:"max_outfits,omitempty"`
	ConsiderPrevious *bool           `json:"consider_previous,omitempty"`
	Inventory        json.RawMessage `json:"inventory"`
}

// State converts the JSON submission to form state.
func (r *SubmissionRequest) State() form.State {
	state := form.State{
		OccasionType:     r.OccasionType,
		Weather:          r.Weather,
		MaxOutfits:       rawText(r.MaxOutfits),
		ConsiderPrevious: true,
		InventoryText:    rawText(r.Inventory),
	}
	if r.ConsiderPrevious != nil {
		state.ConsiderPrevious = *r.ConsiderPrevious
	}
	return state
}

// rawText returns a JSON string's value, or any other JSON value's source text.
func rawText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}

// handleIndex redirects to the form page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/ui/", http.StatusFound)
}

// handleForm renders the form pre-filled with the fixture inventory
func (s *Server) handleForm(w http.ResponseWriter, _ *http.Request) {
	data := rendering.NewPageData(
		string(types.OccasionTypes()[0]),
		string(types.WeatherTypes()[0]),
		strconv.Itoa(form.DefaultMaxOutfits),
		true,
		s.inventoryText,
	)
	s.renderPage(w, http.StatusOK, data)
}

// handleInventory serves the fixture inventory text
func (s *Server) handleInventory(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, s.inventoryText)
}

// handleRecommend submits the form to the recommendation service and renders the result
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmissionBytes)

	state, err := parseSubmission(r)
	if err != nil {
		if wantsJSON(r) {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	result, err := s.submit(r.Context(), state)

	if wantsJSON(r) {
		s.jsonResponse(w, HTTPStatus(err), result)
		return
	}

	if wantsFragment(r) {
		s.renderResult(w, result)
		return
	}

	data := rendering.NewPageData(state.OccasionType, state.Weather, state.MaxOutfits, state.ConsiderPrevious, state.InventoryText)
	data.Result = result
	s.renderPage(w, http.StatusOK, data)
}

// submit builds the request, calls the recommendation service at most once and
// renders the outcome. The returned error is already reflected in the result.
func (s *Server) submit(ctx context.Context, state form.State) (*rendering.Result, error) {
	logger := s.requestLogger(ctx)

	req, err := form.BuildRequest(state, &s.formOptions)
	if err != nil {
		logger.Info("submission rejected", zap.Error(err))
		s.metrics.RecordSubmission(submissionOutcome(0, err))
		return rendering.ErrorResult(err), err
	}

	start := time.Now()
	outfits, err := s.recommender.Recommend(ctx, req)
	if err != nil {
		logger.Warn("recommendation failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		s.metrics.RecordSubmission(submissionOutcome(0, err))
		return rendering.ErrorResult(err), err
	}

	logger.Info("recommendation completed",
		zap.String("occasion", state.OccasionType),
		zap.String("weather", state.Weather),
		zap.Int("max_outfits", req.MaxOutfits),
		zap.Int("inventory_items", len(req.Inventory)),
		zap.Int("outfits", len(outfits)),
		zap.Duration("duration", time.Since(start)),
	)
	s.metrics.RecordSubmission(submissionOutcome(len(outfits), nil))
	return rendering.RenderOutfits(outfits), nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Message:   "Outfit curator form service",
		Version:   s.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data *rendering.PageData) {
	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, data); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderResult writes only the results panel, for clients that swap it into an existing page.
func (s *Server) renderResult(w http.ResponseWriter, result *rendering.Result) {
	var buf bytes.Buffer
	if err := s.renderer.RenderResult(&buf, result); err != nil {
		s.logger.Error("failed to render results", zap.Error(err))
		http.Error(w, "failed to render results", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) requestLogger(ctx context.Context) *zap.Logger {
	if id, err := middleware.RequestIDFromContext(ctx); err == nil {
		return s.logger.With(zap.String("request_id", id))
	}
	return s.logger
}

// parseSubmission reads the form state from a JSON body or an HTML form post.
func parseSubmission(r *http.Request) (form.State, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType := ""
	if contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return form.State{}, &ErrUnsupportedMediaType{ContentType: contentType}
		}
		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		var req SubmissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return form.State{}, &ErrBadSubmission{Cause: fmt.Errorf("failed to decode JSON body: %w", err)}
		}
		return req.State(), nil
	case "", "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxSubmissionBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return form.State{}, &ErrBadSubmission{Cause: err}
		}
		return form.State{
			OccasionType:     r.PostFormValue(form.FieldOccasionType),
			Weather:          r.PostFormValue(form.FieldWeather),
			MaxOutfits:       r.PostFormValue(form.FieldMaxOutfits),
			ConsiderPrevious: checkboxValue(r.PostFormValue(form.FieldConsiderPrevious)),
			InventoryText:    r.PostFormValue(form.FieldInventory),
		}, nil
	default:
		return form.State{}, &ErrUnsupportedMediaType{ContentType: contentType}
	}
}

// checkboxValue reports whether a posted checkbox was ticked.
func checkboxValue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "no":
		return false
	default:
		return true
	}
}

// wantsJSON reports whether the client asked for a JSON result.
func wantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == "application/json" {
			return true
		}
	}
	return false
}

// wantsFragment reports whether the client asked for the results panel alone.
func wantsFragment(r *http.Request) bool {
	return r.URL.Query().Get(fragmentParam) == fragmentResults
}
