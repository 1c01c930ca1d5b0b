package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		user_email TEXT NOT NULL,
		expires_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS leagues (
		league_id TEXT NOT NULL,
		user_email TEXT NOT NULL,
		platform_username TEXT NOT NULL DEFAULT '',
		league_name TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (league_id, user_email)
	)`,
}

// SQLStore implements Store over sqlite or postgres.
type SQLStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// Open connects to the database, verifies it, and applies the schema.
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	driver = strings.ToLower(strings.TrimSpace(driver))
	switch driver {
	case DriverSQLite:
		if err := ensureDir(dsn); err != nil {
			return nil, err
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if driver == DriverSQLite {
		// sqlite serializes writers; one connection also keeps :memory: databases shared.
		db.SetMaxOpenConns(1)
	}
	s := &SQLStore{db: db, now: time.Now}
	if err := s.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func ensureDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database dir: %w", err)
		}
	}
	return nil
}

// Migrate creates the tables when missing.
func (s *SQLStore) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SessionEmail resolves an unexpired session token to the user's email.
func (s *SQLStore) SessionEmail(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrSessionNotFound
	}
	var email string
	err := s.db.GetContext(ctx, &email,
		s.db.Rebind(`SELECT user_email FROM sessions WHERE token = ? AND expires_at > ?`),
		token, s.now().Unix())
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	return email, nil
}

// CreateSession issues a new session token for email.
func (s *SQLStore) CreateSession(ctx context.Context, email string, ttl time.Duration) (Session, error) {
	email = normalizeEmail(email)
	if email == "" {
		return Session{}, errors.New("user email required")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	sess := Session{Token: uuid.NewString(), UserEmail: email, ExpiresAt: s.now().Add(ttl).UTC()}
	_, err := s.db.ExecContext(ctx,
		s.db.Rebind(`INSERT INTO sessions (token, user_email, expires_at) VALUES (?, ?, ?)`),
		sess.Token, sess.UserEmail, sess.ExpiresAt.Unix())
	if err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// LeagueUsername returns the stored link for leagueID and email.
func (s *SQLStore) LeagueUsername(ctx context.Context, leagueID, email string) (LeagueLink, error) {
	var link LeagueLink
	err := s.db.GetContext(ctx, &link,
		s.db.Rebind(`SELECT league_id, user_email, platform_username, league_name
			FROM leagues WHERE league_id = ? AND user_email = ?`),
		strings.TrimSpace(leagueID), normalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return LeagueLink{}, ErrLeagueNotFound
	}
	if err != nil {
		return LeagueLink{}, fmt.Errorf("lookup league: %w", err)
	}
	return checkLink(link)
}

// LinkLeague inserts or updates a league link.
func (s *SQLStore) LinkLeague(ctx context.Context, link LeagueLink) error {
	link, err := validateLink(link)
	if err != nil {
		return err
	}
	_, err = s.db.NamedExecContext(ctx,
		`INSERT INTO leagues (league_id, user_email, platform_username, league_name)
		VALUES (:league_id, :user_email, :platform_username, :league_name)
		ON CONFLICT (league_id, user_email) DO UPDATE SET
			platform_username = excluded.platform_username,
			league_name = excluded.league_name`,
		link)
	if err != nil {
		return fmt.Errorf("link league: %w", err)
	}
	return nil
}

// Ping verifies the database connection.
func (s *SQLStore) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("store not configured")
	}
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *SQLStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
