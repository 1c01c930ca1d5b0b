// Package projections joins name-keyed season projections to player ids.
package projections

import (
	"context"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
	"github.com/preston-bernstein/endzone-trade-service/internal/logging"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers"
)

// Loader fetches season projections. Callers resolve the rows with Resolve once the player
// database is in hand, so both fetches can run concurrently.
type Loader struct {
	provider providers.ProjectionProvider
	season   string
	logger   *slog.Logger
}

// NewLoader returns a loader for season.
func NewLoader(provider providers.ProjectionProvider, season string, logger *slog.Logger) *Loader {
	return &Loader{provider: provider, season: season, logger: logger}
}

// Stats summarizes one resolution pass.
type Stats struct {
	Fetched   int
	Resolved  int
	Unmatched int
	Ambiguous int
}

// Fetch returns the raw name-keyed projections, or nil with a warning when the source fails.
func (l *Loader) Fetch(ctx context.Context) []providers.Projection {
	if l == nil || l.provider == nil {
		return nil
	}
	raw, err := l.provider.FetchProjections(ctx, l.season)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, l.logger), "projections unavailable, continuing without",
			slog.String(logging.FieldSeason, l.season), slog.Any(logging.FieldError, err))
		return nil
	}
	return raw
}

// Resolve maps each projection to a player id using normalized names.
// When several players share a name, position and team on the projection narrow the match;
// remaining ties prefer a fantasy position on an active team, and unresolved ties are skipped.
func Resolve(raw []providers.Projection, db map[string]players.Info) (map[string]float64, Stats) {
	index := make(map[string][]players.Info, len(db))
	for id, info := range db {
		if info.ID == "" {
			info.ID = id
		}
		key := NormalizeName(info.Name)
		if key == "" {
			continue
		}
		index[key] = append(index[key], info)
	}

	stats := Stats{Fetched: len(raw)}
	out := make(map[string]float64, len(raw))
	for _, p := range raw {
		candidates := index[NormalizeName(p.Name)]
		if len(candidates) == 0 {
			stats.Unmatched++
			continue
		}
		info, ok := pick(candidates, p)
		if !ok {
			stats.Ambiguous++
			continue
		}
		out[info.ID] = p.Points
		stats.Resolved++
	}
	return out, stats
}

func pick(candidates []players.Info, p providers.Projection) (players.Info, bool) {
	if len(candidates) == 1 {
		return candidates[0], true
	}
	narrowed := filter(candidates, func(i players.Info) bool {
		return p.Position != "" && strings.EqualFold(string(i.Position), p.Position)
	})
	if len(narrowed) == 1 {
		return narrowed[0], true
	}
	if len(narrowed) > 1 {
		candidates = narrowed
	}
	narrowed = filter(candidates, func(i players.Info) bool {
		return p.Team != "" && strings.EqualFold(i.Team, p.Team)
	})
	if len(narrowed) == 1 {
		return narrowed[0], true
	}
	if len(narrowed) > 1 {
		candidates = narrowed
	}
	narrowed = filter(candidates, func(i players.Info) bool {
		return fantasyPosition(i.Position) && i.Team != "" && i.Team != players.FreeAgentTeam
	})
	if len(narrowed) == 1 {
		return narrowed[0], true
	}
	return players.Info{}, false
}

func filter(in []players.Info, keep func(players.Info) bool) []players.Info {
	var out []players.Info
	for _, i := range in {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}

func fantasyPosition(pos players.Position) bool {
	switch pos {
	case players.QB, players.RB, players.WR, players.TE, players.K, players.DEF:
		return true
	}
	return false
}
