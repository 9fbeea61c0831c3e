package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dgallion1/mdsort/internal/pipeline"
)

// SupportedExtensions lists file extensions accepted by the batch endpoint.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

type batchItem struct {
	Filename   string              `json:"filename"`
	Status     pipeline.FileStatus `json:"status,omitempty"`
	InputHash  string              `json:"input_hash,omitempty"`
	OutputHash string              `json:"output_hash,omitempty"`
	Sorted     *string             `json:"sorted,omitempty"`
	Error      string              `json:"error,omitempty"`
}

func (s *Server) handleBatchSort(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	p, err := s.pipelineFor(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	items := make([]batchItem, len(files))
	var texts []string
	var slots []int

	for i, fh := range files {
		filename := sanitizeFilename(fh.Filename)
		items[i].Filename = filename
		if !SupportedExtensions[strings.ToLower(filepath.Ext(filename))] {
			items[i].Status = pipeline.StatusFailed
			items[i].Error = fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename))
			continue
		}

		f, err := fh.Open()
		if err != nil {
			items[i].Status = pipeline.StatusFailed
			items[i].Error = "failed to open file"
			continue
		}
		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
			items[i].Status = pipeline.StatusFailed
			items[i].Error = "file too large or read error"
			continue
		}
		if !utf8.Valid(data) {
			items[i].Status = pipeline.StatusFailed
			items[i].Error = "file must be UTF-8 text"
			continue
		}

		items[i].InputHash = pipeline.ContentHashHex(data)
		texts = append(texts, string(data))
		slots = append(slots, i)
	}

	start := time.Now()
	sorted, err := p.SortMany(r.Context(), texts, s.cfg.WorkerCount)
	if err != nil {
		jsonError(w, "batch cancelled: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	elapsed := time.Since(start)

	for j, i := range slots {
		out := sorted[j]
		items[i].Sorted = &out
		items[i].OutputHash = pipeline.ContentHashHex([]byte(out))
		if items[i].OutputHash == items[i].InputHash {
			items[i].Status = pipeline.StatusUnchanged
		} else {
			items[i].Status = pipeline.StatusSorted
		}
		s.stats.Record(elapsed/time.Duration(len(slots)), strings.Count(texts[j], "\n")+1)
	}

	s.log.Info("batch sorted", "files", len(files), "sorted", len(slots), "duration_ms", elapsed.Milliseconds())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"files": items})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
