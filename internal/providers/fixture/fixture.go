// Package fixture serves a deterministic league for local runs and tests.
package fixture

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers"
)

//go:embed data/*.json
var embedded embed.FS

const (
	rostersFile     = "rosters.json"
	usersFile       = "users.json"
	leagueFile      = "league.json"
	playersFile     = "players.json"
	projectionsFile = "projections.json"
)

// Provider answers every upstream call from an in-memory league.
// Any league id is accepted and echoed back in the settings.
type Provider struct {
	rosters     []league.Roster
	users       []league.User
	settings    league.Settings
	players     map[string]players.Info
	projections []providers.Projection
}

// New returns the built-in four-team league.
func New() *Provider {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("fixture: embedded data: %v", err))
	}
	p, err := load(sub)
	if err != nil {
		panic(fmt.Sprintf("fixture: embedded data: %v", err))
	}
	return p
}

// NewFromDir loads a league from rosters.json, users.json, league.json, players.json,
// and projections.json in dir.
func NewFromDir(dir string) (*Provider, error) {
	return load(os.DirFS(dir))
}

func load(fsys fs.FS) (*Provider, error) {
	p := &Provider{}
	files := []struct {
		name string
		into any
	}{
		{rostersFile, &p.rosters},
		{usersFile, &p.users},
		{leagueFile, &p.settings},
		{playersFile, &p.players},
		{projectionsFile, &p.projections},
	}
	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.into); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func decodeFile(fsys fs.FS, name string, into any) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("fixture: open %s: %w", name, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(into); err != nil {
		return fmt.Errorf("fixture: decode %s: %w", name, err)
	}
	return nil
}

// FetchRosters returns a copy of the fixture rosters.
func (p *Provider) FetchRosters(ctx context.Context, leagueID string) ([]league.Roster, error) {
	_ = ctx
	_ = leagueID
	out := make([]league.Roster, len(p.rosters))
	for i, r := range p.rosters {
		r.PlayerIDs = append([]string(nil), r.PlayerIDs...)
		out[i] = r
	}
	return out, nil
}

// FetchUsers returns a copy of the fixture league members.
func (p *Provider) FetchUsers(ctx context.Context, leagueID string) ([]league.User, error) {
	_ = ctx
	_ = leagueID
	return append([]league.User(nil), p.users...), nil
}

// FetchLeague returns the fixture settings under the requested league id.
func (p *Provider) FetchLeague(ctx context.Context, leagueID string) (league.Settings, error) {
	_ = ctx
	s := p.settings
	s.RosterPositions = append([]string(nil), p.settings.RosterPositions...)
	if leagueID != "" {
		s.LeagueID = leagueID
	}
	return s, nil
}

// FetchPlayers returns a copy of the fixture player database.
func (p *Provider) FetchPlayers(ctx context.Context) (map[string]players.Info, error) {
	_ = ctx
	out := make(map[string]players.Info, len(p.players))
	for id, info := range p.players {
		out[id] = info
	}
	return out, nil
}

// FetchProjections returns the fixture projections regardless of season.
func (p *Provider) FetchProjections(ctx context.Context, season string) ([]providers.Projection, error) {
	_ = ctx
	_ = season
	return append([]providers.Projection(nil), p.projections...), nil
}
