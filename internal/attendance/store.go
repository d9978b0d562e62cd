package attendance

import (
	"context"
	"database/sql"
	"time"
)

type Store interface {
	Add(ctx context.Context, e Entry) (Entry, error)
	// List returns entries in the order they were recorded.
	List(ctx context.Context) ([]Entry, error)
	// Clear removes every entry and reports how many were deleted.
	Clear(ctx context.Context) (int64, error)
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Add(ctx context.Context, e Entry) (Entry, error) {
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO attendance_entries (name, course, time_in, signature)
		 VALUES ($1,$2,$3,$4) RETURNING id`,
		e.Name, e.Course, e.TimeIn.Unix(), e.Signature).Scan(&e.ID)
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *SQLStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, course, time_in, signature FROM attendance_entries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		var timeIn int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Course, &timeIn, &e.Signature); err != nil {
			return nil, err
		}
		e.TimeIn = time.Unix(timeIn, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLStore) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM attendance_entries`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
