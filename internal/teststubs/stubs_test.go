package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Rosters: []league.Roster{{RosterID: 1}}, UsersErr: err}

	if got, e := p.FetchRosters(context.Background(), "l1"); e != nil || len(got) != 1 {
		t.Fatalf("expected rosters, got %v err %v", got, e)
	}
	if _, got := p.FetchUsers(context.Background(), "l1"); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 2 {
		t.Fatalf("expected call count 2, got %d", p.Calls.Load())
	}
}

func TestStubProviderEchoesLeagueID(t *testing.T) {
	p := &StubProvider{}
	settings, err := p.FetchLeague(context.Background(), "abc")
	if err != nil || settings.LeagueID != "abc" {
		t.Fatalf("expected echoed league id, got %+v err %v", settings, err)
	}
}
