package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	syncx "github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/sync"
)

// EventAppender records domain events; *syncx.EventRepo satisfies it.
type EventAppender interface {
	Append(ctx context.Context, typ, key string, payload any) error
}

// EventLog is an EventAppender that can also be replayed.
type EventLog interface {
	EventAppender
	Since(ctx context.Context, seq int64, limit int) ([]syncx.Event, error)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
