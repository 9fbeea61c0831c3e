package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dgallion1/mdsort/internal/render"
	"github.com/dgallion1/mdsort/internal/sorter"
)

var errTooLarge = errors.New("document too large")

// readDocument reads the request body as UTF-8 text, enforcing the upload
// limit.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", errTooLarge
		}
		return "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", errTooLarge
	}
	if !utf8.Valid(data) {
		return "", errors.New("document must be UTF-8 text")
	}
	return string(data), nil
}

func (s *Server) writeReadError(w http.ResponseWriter, err error) {
	if errors.Is(err, errTooLarge) {
		jsonError(w, fmt.Sprintf("document exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}
	jsonError(w, err.Error(), http.StatusBadRequest)
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	p, err := s.pipelineFor(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	text, err := s.readDocument(w, r)
	if err != nil {
		s.writeReadError(w, err)
		return
	}

	start := time.Now()
	sorted := p.Sort(text)
	s.stats.Record(time.Since(start), strings.Count(text, "\n")+1)

	switch format := r.URL.Query().Get("format"); format {
	case "", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		io.WriteString(w, sorted)
	case "html":
		var buf bytes.Buffer
		if err := render.HTML(&buf, sorted); err != nil {
			s.log.Error("html preview failed", "error", err)
			jsonError(w, "failed to render preview", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	default:
		jsonError(w, fmt.Sprintf("unsupported format: %s", format), http.StatusBadRequest)
	}
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	p, err := s.pipelineFor(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	text, err := s.readDocument(w, r)
	if err != nil {
		s.writeReadError(w, err)
		return
	}

	violations := p.Check(text)
	if violations == nil {
		violations = []sorter.Violation{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"sorted":     len(violations) == 0,
		"violations": violations,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
