// Package syncx records an append-only log of domain events so another site
// can replay what happened here.
package syncx

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Event types.
const (
	TypeLoginSucceeded     = "LoginSucceeded"
	TypeAttendanceRecorded = "AttendanceRecorded"
	TypeAttendanceExported = "AttendanceExported"
	TypeAttendanceCleared  = "AttendanceCleared"
)

const defaultSite = "local"

type Event struct {
	Seq       int64           `json:"seq"`
	SiteID    string          `json:"site_id"`
	Type      string          `json:"type"`
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	CreatedAt int64           `json:"created_at"`
}

type EventRepo struct {
	db     *sql.DB
	siteID string
	now    func() time.Time
}

func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db, siteID: defaultSite, now: time.Now}
}

// WithSite sets the site id stamped on appended events.
func (r *EventRepo) WithSite(id string) *EventRepo {
	if id != "" {
		r.siteID = id
	}
	return r
}

// Append stores payload as the JSON data of a new event.
func (r *EventRepo) Append(ctx context.Context, typ, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		r.siteID, typ, key, string(data), r.now().Unix())
	return err
}

// Since returns up to limit events with a sequence number greater than seq.
func (r *EventRepo) Since(ctx context.Context, seq int64, limit int) ([]Event, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, site_id, typ, key, data, created_at
		   FROM event_log WHERE seq > $1 ORDER BY seq LIMIT $2`, seq, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var e Event
		var data string
		if err := rows.Scan(&e.Seq, &e.SiteID, &e.Type, &e.Key, &data, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Data = json.RawMessage(data)
		out = append(out, e)
	}
	return out, rows.Err()
}
