package storage

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestFSStore_PutGetList(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key, err := s.Put("exports/a.txt", strings.NewReader("hello"))
	if err != nil || key != "exports/a.txt" {
		t.Fatalf("put = %q, %v", key, err)
	}
	if _, err := s.Put("/exports//b.txt", strings.NewReader("world")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Put("other/c.txt", strings.NewReader("!")); err != nil {
		t.Fatal(err)
	}

	rc, err := s.Get("exports/a.txt")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(rc)
	rc.Close()
	if string(b) != "hello" {
		t.Errorf("get = %q", b)
	}

	keys, err := s.List("exports/")
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "exports/a.txt" || keys[1] != "exports/b.txt" {
		t.Errorf("list = %v", keys)
	}

	u, err := s.SignedURL("exports/a.txt")
	if err != nil || !strings.HasPrefix(u, "file://") || !strings.HasSuffix(u, "/exports/a.txt") {
		t.Errorf("signed url = %q, %v", u, err)
	}
}

func TestFSStore_RejectsTraversal(t *testing.T) {
	s, _ := NewFSStore(t.TempDir())
	for _, k := range []string{"", "../escape.txt", "exports/../../x", "."} {
		if _, err := s.Put(k, strings.NewReader("x")); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("put %q: got %v, want ErrInvalidKey", k, err)
		}
	}
}

func TestFSStore_GetMissing(t *testing.T) {
	s, _ := NewFSStore(t.TempDir())
	if _, err := s.Get("exports/none.txt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
