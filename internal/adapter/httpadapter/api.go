package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/couchcryptid/radar-console/internal/console"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

const maxBodyBytes = 1 << 12

type prfRequest struct {
	Hz *int `json:"hz"`
}

type rpmRequest struct {
	RPM *float64 `json:"rpm"`
}

type analyzeRequest struct {
	Count int `json:"count"`
}

type analyzeResponse struct {
	Generated int `json:"generated"`
}

func (s *Server) handleScan(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, s.console.Snapshot())
}

func (s *Server) handleSetPRF(w http.ResponseWriter, r *http.Request) {
	var req prfRequest
	if err := decodeBody(r, &req, false); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Hz == nil {
		s.writeError(w, http.StatusBadRequest, errors.New("missing field: hz"))
		return
	}

	s.console.SetPRF(*req.Hz)
	sharedobs.WriteJSON(w, http.StatusOK, s.console.Snapshot())
}

func (s *Server) handleSetRPM(w http.ResponseWriter, r *http.Request) {
	var req rpmRequest
	if err := decodeBody(r, &req, false); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.RPM == nil {
		s.writeError(w, http.StatusBadRequest, errors.New("missing field: rpm"))
		return
	}

	s.console.SetRotationRPM(*req.RPM)
	sharedobs.WriteJSON(w, http.StatusOK, s.console.Snapshot())
}

func (s *Server) handleStart(w http.ResponseWriter, _ *http.Request) {
	s.console.Start()
	sharedobs.WriteJSON(w, http.StatusOK, s.console.Snapshot())
}

func (s *Server) handleStop(w http.ResponseWriter, _ *http.Request) {
	s.console.Stop()
	sharedobs.WriteJSON(w, http.StatusOK, s.console.Snapshot())
}

// handleAnalyze regenerates the target batch. The body is optional; an
// absent or zero count uses the configured batch size.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeBody(r, &req, true); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Count < 0 {
		s.writeError(w, http.StatusBadRequest, errors.New("count must not be negative"))
		return
	}

	n := s.console.Regenerate(req.Count)
	sharedobs.WriteJSON(w, http.StatusOK, analyzeResponse{Generated: n})
}

func (s *Server) handleTarget(w http.ResponseWriter, r *http.Request) {
	detail, err := s.console.Target(r.PathValue("id"))
	if errors.Is(err, console.ErrTargetNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, detail)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("api request failed", "error", err)
	} else {
		s.logger.Debug("api request rejected", "status", status, "error", err)
	}
	sharedobs.WriteJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(r *http.Request, v any, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) && optional {
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
