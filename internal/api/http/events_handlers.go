package http

import (
	"net/http"
	"strconv"
)

// GET /events?since=&limit=
// Returns events after the since cursor, oldest first, and the cursor to ask
// for next.
func EventsHandler(log EventLog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var since int64
		if s := r.URL.Query().Get("since"); s != "" {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil || v < 0 {
				http.Error(w, "bad since", http.StatusBadRequest)
				return
			}
			since = v
		}
		limit := parseIntDefault(r.URL.Query().Get("limit"), 100)

		evs, err := log.Since(r.Context(), since, limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		next := since
		if len(evs) > 0 {
			next = evs[len(evs)-1].Seq
		}
		respondJSON(w, http.StatusOK, map[string]any{"events": evs, "next": next})
	}
}
