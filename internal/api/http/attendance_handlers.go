package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/attendance"
	authmw "github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/auth/middleware"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/storage"
	syncx "github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/sync"
)

const exportPrefix = "exports/"

// AttendanceAPI serves the attendance log behind login.
type AttendanceAPI struct {
	Store  attendance.Store
	Blobs  storage.BlobStore
	Events EventAppender // optional
	Now    func() time.Time
}

func (a *AttendanceAPI) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *AttendanceAPI) record(r *http.Request, typ, key string, payload any) {
	if a.Events == nil {
		return
	}
	if err := a.Events.Append(r.Context(), typ, key, payload); err != nil {
		log.Printf("event %s: %v", typ, err)
	}
}

// GET /attendance/summary
// Downloads the signed-in user's summary; the login time is the token's iat.
func (a *AttendanceAPI) Summary(w http.ResponseWriter, r *http.Request) {
	claims := authmw.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var buf bytes.Buffer
	s := attendance.Summary{Username: claims.Sub, LoginTime: claims.LoginTime().In(time.Local)}
	if err := attendance.WriteSummary(&buf, s, a.now()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attendance.SummaryFilename))
	_, _ = w.Write(buf.Bytes())
}

// POST /attendance  { "name": "...", "course": "..." }
func (a *AttendanceAPI) Record(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Course string `json:"course"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	e, err := attendance.NewEntry(req.Name, req.Course, a.now())
	if err == nil {
		e, err = a.Store.Add(r.Context(), e)
	}
	var ve *attendance.ValidationError
	if errors.As(err, &ve) {
		respondJSON(w, http.StatusUnprocessableEntity, ve)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a.record(r, syncx.TypeAttendanceRecorded, e.Signature, e)
	respondJSON(w, http.StatusCreated, e)
}

// GET /attendance?limit=&offset=
func (a *AttendanceAPI) List(w http.ResponseWriter, r *http.Request) {
	list, err := a.Store.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	total := len(list)
	offset := parseIntDefault(r.URL.Query().Get("offset"), 0)
	limit := parseIntDefault(r.URL.Query().Get("limit"), total)
	if offset > total {
		offset = total
	}
	if limit > total-offset {
		limit = total - offset
	}
	list = list[offset : offset+limit]
	respondJSON(w, http.StatusOK, map[string]any{"total": total, "entries": list})
}

// POST /attendance/export
// Writes every entry into the blob store and returns the export's name.
func (a *AttendanceAPI) Export(w http.ResponseWriter, r *http.Request) {
	list, err := a.Store.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	now := a.now()
	var buf bytes.Buffer
	if err := attendance.WriteExport(&buf, list, now); err != nil {
		if errors.Is(err, attendance.ErrNothingToExport) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	name := attendance.ExportName(now)
	key, err := a.Blobs.Put(exportPrefix+name, &buf)
	if err != nil {
		http.Error(w, "store error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	url, err := a.Blobs.SignedURL(key)
	if err != nil {
		http.Error(w, "store error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	a.record(r, syncx.TypeAttendanceExported, name, map[string]any{"key": key, "records": len(list)})
	respondJSON(w, http.StatusCreated, map[string]any{"name": name, "key": key, "url": url, "records": len(list)})
}

// DELETE /attendance
func (a *AttendanceAPI) Clear(w http.ResponseWriter, r *http.Request) {
	n, err := a.Store.Clear(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a.record(r, syncx.TypeAttendanceCleared, authmw.SubjectFromContext(r.Context()), map[string]int64{"deleted": n})
	respondJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

// MountExports serves stored exports under the router it is given.
func MountExports(r chi.Router, bs storage.BlobStore) {
	// GET /exports
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		keys, err := bs.List(exportPrefix)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, strings.TrimPrefix(k, exportPrefix))
		}
		respondJSON(w, http.StatusOK, names)
	})

	// GET /exports/{name}
	r.Get("/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if strings.ContainsAny(name, `/\`) {
			http.Error(w, "bad name", http.StatusBadRequest)
			return
		}
		rc, err := bs.Get(exportPrefix + name)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "not found", http.StatusNotFound)
			return
		case errors.Is(err, storage.ErrInvalidKey):
			http.Error(w, "bad name", http.StatusBadRequest)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		_, _ = io.Copy(w, rc)
	})
}
