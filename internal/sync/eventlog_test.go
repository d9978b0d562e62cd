package syncx

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/db"
)

func TestEventRepo_AppendSince(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "ev.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer dbh.Close()

	r := NewEventRepo(dbh).WithSite("lab-1")
	r.now = func() time.Time { return time.Unix(1700000000, 0) }

	if err := r.Append(ctx, TypeLoginSucceeded, "admin", map[string]string{"role": "admin"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Append(ctx, TypeAttendanceCleared, "admin", map[string]int{"deleted": 3}); err != nil {
		t.Fatal(err)
	}

	all, err := r.Since(ctx, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d events, want 2", len(all))
	}
	first := all[0]
	if first.Type != TypeLoginSucceeded || first.SiteID != "lab-1" || first.CreatedAt != 1700000000 {
		t.Errorf("unexpected first event: %+v", first)
	}
	if string(first.Data) != `{"role":"admin"}` {
		t.Errorf("data = %s", first.Data)
	}

	rest, err := r.Since(ctx, first.Seq, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 1 || rest[0].Type != TypeAttendanceCleared {
		t.Errorf("since first: %+v", rest)
	}
}
