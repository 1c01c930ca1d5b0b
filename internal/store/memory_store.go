package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type linkKey struct {
	leagueID string
	email    string
}

// MemoryStore keeps sessions and league links in memory behind a RWMutex.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	links    map[linkKey]LeagueLink
	now      func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		links:    make(map[linkKey]LeagueLink),
		now:      time.Now,
	}
}

func (s *MemoryStore) SessionEmail(ctx context.Context, token string) (string, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[strings.TrimSpace(token)]
	if !ok || !sess.ExpiresAt.After(s.now()) {
		return "", ErrSessionNotFound
	}
	return sess.UserEmail, nil
}

func (s *MemoryStore) CreateSession(ctx context.Context, email string, ttl time.Duration) (Session, error) {
	_ = ctx
	email = normalizeEmail(email)
	if email == "" {
		return Session{}, errors.New("user email required")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := Session{Token: uuid.NewString(), UserEmail: email, ExpiresAt: s.now().Add(ttl).UTC()}
	s.sessions[sess.Token] = sess
	return sess, nil
}

// PutSession stores a session with a caller-chosen token.
func (s *MemoryStore) PutSession(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.UserEmail = normalizeEmail(sess.UserEmail)
	s.sessions[sess.Token] = sess
}

func (s *MemoryStore) LeagueUsername(ctx context.Context, leagueID, email string) (LeagueLink, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	link, ok := s.links[linkKey{strings.TrimSpace(leagueID), normalizeEmail(email)}]
	if !ok {
		return LeagueLink{}, ErrLeagueNotFound
	}
	return checkLink(link)
}

func (s *MemoryStore) LinkLeague(ctx context.Context, link LeagueLink) error {
	_ = ctx
	link, err := validateLink(link)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[linkKey{link.LeagueID, link.UserEmail}] = link
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	_ = ctx
	return nil
}

func (s *MemoryStore) Close() error { return nil }
