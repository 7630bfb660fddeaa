package staging

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "staging.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "WOS:1", 12, []byte("<REC>one</REC>")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "WOS:1", 12)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "<REC>one</REC>" {
		t.Errorf("Get = %q", got)
	}

	if _, err := s.Get(ctx, "WOS:2", 12); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing record error = %v, want ErrNotFound", err)
	}
}

func TestPutReplacesSameKey(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.Put(ctx, "WOS:1", 12, []byte("<REC>old</REC>"))
	if err := s.Put(ctx, "WOS:1", 12, []byte("<REC>new</REC>")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "WOS:1", 12)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "<REC>new</REC>" {
		t.Errorf("Get = %q, want the replacement", got)
	}
	if n, _ := s.Count(ctx, 12); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestReleasesAreIndependent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.Put(ctx, "WOS:1", 12, []byte("<REC>r12</REC>"))
	s.Put(ctx, "WOS:1", 13, []byte("<REC>r13</REC>"))

	got, err := s.Get(ctx, "WOS:1", 12)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "<REC>r12</REC>" {
		t.Errorf("release 12 copy = %q", got)
	}

	releases, err := s.Releases(ctx)
	if err != nil {
		t.Fatalf("Releases: %v", err)
	}
	if len(releases) != 2 || releases[0] != 12 || releases[1] != 13 {
		t.Errorf("Releases = %v", releases)
	}
}

func TestWalkOrderAndStop(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.Put(ctx, "WOS:3", 12, []byte("c"))
	s.Put(ctx, "WOS:1", 12, []byte("a"))
	s.Put(ctx, "WOS:2", 12, []byte("b"))

	var uids []string
	err := s.Walk(ctx, 12, func(uid string, xml []byte) error {
		uids = append(uids, uid)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	want := []string{"WOS:1", "WOS:2", "WOS:3"}
	for i, u := range want {
		if uids[i] != u {
			t.Fatalf("Walk order = %v, want %v", uids, want)
		}
	}

	stop := errors.New("stop")
	n := 0
	err = s.Walk(ctx, 12, func(uid string, xml []byte) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk error = %v, want the callback error", err)
	}
	if n != 1 {
		t.Errorf("Walk visited %d records after error, want 1", n)
	}
}
