package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openSQLite(t *testing.T) *SQLStore {
	t.Helper()
	s, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "nested", "endzone.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func implementations(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": openSQLite(t),
	}
}

func TestStoreSessions(t *testing.T) {
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			sess, err := s.CreateSession(ctx, " Coach@Example.com ", time.Hour)
			if err != nil {
				t.Fatalf("create session: %v", err)
			}
			if sess.Token == "" || sess.UserEmail != "coach@example.com" {
				t.Fatalf("unexpected session %+v", sess)
			}
			email, err := s.SessionEmail(ctx, sess.Token)
			if err != nil || email != "coach@example.com" {
				t.Fatalf("expected session email, got %q err %v", email, err)
			}
			if _, err := s.SessionEmail(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
				t.Fatalf("expected ErrSessionNotFound, got %v", err)
			}
			if _, err := s.SessionEmail(ctx, ""); !errors.Is(err, ErrSessionNotFound) {
				t.Fatalf("expected ErrSessionNotFound for empty token, got %v", err)
			}
			if _, err := s.CreateSession(ctx, "  ", time.Hour); err == nil {
				t.Fatal("expected error for empty email")
			}
		})
	}
}

func TestStoreLeagueLinks(t *testing.T) {
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := s.LeagueUsername(ctx, "L1", "coach@example.com"); !errors.Is(err, ErrLeagueNotFound) {
				t.Fatalf("expected ErrLeagueNotFound, got %v", err)
			}

			if err := s.LinkLeague(ctx, LeagueLink{LeagueID: "L1", UserEmail: "Coach@example.com", LeagueName: "Bros"}); err != nil {
				t.Fatalf("link: %v", err)
			}
			if _, err := s.LeagueUsername(ctx, "L1", "coach@example.com"); !errors.Is(err, ErrUsernameMissing) {
				t.Fatalf("expected ErrUsernameMissing, got %v", err)
			}

			if err := s.LinkLeague(ctx, LeagueLink{LeagueID: "L1", UserEmail: "coach@example.com", PlatformUsername: " alice ", LeagueName: "Bros II"}); err != nil {
				t.Fatalf("relink: %v", err)
			}
			link, err := s.LeagueUsername(ctx, " L1 ", "COACH@example.com")
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			if link.PlatformUsername != "alice" || link.LeagueName != "Bros II" {
				t.Fatalf("expected upserted link, got %+v", link)
			}

			if err := s.LinkLeague(ctx, LeagueLink{UserEmail: "x@example.com"}); err == nil {
				t.Fatal("expected error for missing league id")
			}
			if err := s.LinkLeague(ctx, LeagueLink{LeagueID: "L2"}); err == nil {
				t.Fatal("expected error for missing email")
			}
			if err := s.Ping(ctx); err != nil {
				t.Fatalf("ping: %v", err)
			}
		})
	}
}

func TestSessionsExpire(t *testing.T) {
	clock := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	mem := NewMemoryStore()
	mem.now = now
	db := openSQLite(t)
	db.now = now

	for name, s := range map[string]Store{"memory": mem, "sqlite": db} {
		sess, err := s.CreateSession(context.Background(), "a@example.com", time.Minute)
		if err != nil {
			t.Fatalf("%s: create: %v", name, err)
		}
		clock = clock.Add(2 * time.Minute)
		if _, err := s.SessionEmail(context.Background(), sess.Token); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("%s: expected expired session, got %v", name, err)
		}
	}
}

func TestMemoryStorePutSession(t *testing.T) {
	s := NewMemoryStore()
	s.PutSession(Session{Token: "tok", UserEmail: "A@B.com", ExpiresAt: time.Now().Add(time.Hour)})
	email, err := s.SessionEmail(context.Background(), "tok")
	if err != nil || email != "a@b.com" {
		t.Fatalf("expected stored session, got %q err %v", email, err)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", "dsn"); err == nil {
		t.Fatal("expected unsupported driver error")
	}
}

func TestOpenInMemorySQLite(t *testing.T) {
	s, err := Open(context.Background(), "SQLite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate twice: %v", err)
	}
}

func TestSQLStoreNilSafety(t *testing.T) {
	var s *SQLStore
	if err := s.Ping(context.Background()); err == nil {
		t.Fatal("expected error from nil store")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("expected nil close, got %v", err)
	}
}
