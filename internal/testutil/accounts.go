package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/endzone-trade-service/internal/store"
)

// Account describes a logged-in user with one linked league. Expired stores the
// session with an expiry in the past.
type Account struct {
	Token    string
	Email    string
	LeagueID string
	Username string
	Expired  bool
}

// NewLinkedStore returns a memory store holding a live session and league link for acct.
func NewLinkedStore(t testing.TB, acct Account) *store.MemoryStore {
	t.Helper()
	ms := store.NewMemoryStore()
	expires := time.Now().Add(time.Hour)
	if acct.Expired {
		expires = time.Now().Add(-time.Minute)
	}
	ms.PutSession(store.Session{Token: acct.Token, UserEmail: acct.Email, ExpiresAt: expires})
	if err := ms.LinkLeague(context.Background(), store.LeagueLink{
		LeagueID:         acct.LeagueID,
		UserEmail:        acct.Email,
		PlatformUsername: acct.Username,
	}); err != nil {
		t.Fatalf("link league: %v", err)
	}
	return ms
}
