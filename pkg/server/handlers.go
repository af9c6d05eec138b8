package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/matzehuels/tooltipkit/pkg/buildinfo"
	tkerrors "github.com/matzehuels/tooltipkit/pkg/errors"
	"github.com/matzehuels/tooltipkit/pkg/pipeline"
)

// TooltipRequest is the body of POST /v1/tooltips. Exactly one of View and
// Data must be set.
type TooltipRequest struct {
	View      string          `json:"view,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Locale    string          `json:"locale,omitempty"`
	Series    int             `json:"series,omitempty"`
	AllSeries bool            `json:"allSeries,omitempty"`
	Point     *int            `json:"point,omitempty"`
	Refresh   bool            `json:"refresh,omitempty"`
}

// ViewResponse is the body returned by POST /v1/views.
type ViewResponse struct {
	View string `json:"view"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorBody struct {
	Code    tkerrors.Code `json:"code"`
	Message string        `json:"message"`
}

type errorResponse struct {
	Error     errorBody `json:"error"`
	RequestID string    `json:"requestId,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleStoreView(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	hash, err := s.runner.StoreView(r.Context(), body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ViewResponse{View: hash})
}

func (s *Server) handleTooltips(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req TooltipRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, r, tkerrors.Wrap(tkerrors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		ViewHash:    req.View,
		Data:        req.Data,
		Locale:      req.Locale,
		SeriesIndex: req.Series,
		AllSeries:   req.AllSeries,
		Point:       req.Point,
		Refresh:     req.Refresh,
		Logger:      s.logger.With("request_id", RequestID(r.Context())),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, tkerrors.New(tkerrors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, tkerrors.Wrap(tkerrors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(body) == 0 {
		return nil, tkerrors.New(tkerrors.ErrCodeInvalidInput, "request body is empty")
	}
	return body, nil
}

// StatusCode maps an error to its HTTP status.
func StatusCode(err error) int {
	switch tkerrors.KindOf(err) {
	case tkerrors.KindValidation:
		return http.StatusBadRequest
	case tkerrors.KindNotFound:
		return http.StatusNotFound
	case tkerrors.KindUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func errNotFound(r *http.Request) error {
	return tkerrors.New(tkerrors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	code := tkerrors.GetCode(err)
	msg := tkerrors.UserMessage(err)
	if code == "" {
		code = tkerrors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{
		Error:     errorBody{Code: code, Message: msg},
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
