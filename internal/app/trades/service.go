// Package trades runs trade recommendations for a league member.
package trades

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/endzone-trade-service/internal/analysis"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
	domain "github.com/preston-bernstein/endzone-trade-service/internal/domain/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/logging"
	"github.com/preston-bernstein/endzone-trade-service/internal/metrics"
	"github.com/preston-bernstein/endzone-trade-service/internal/projections"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers"
	engine "github.com/preston-bernstein/endzone-trade-service/internal/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/valuation"
)

// Deps are the collaborators a Service needs.
type Deps struct {
	League      providers.LeagueProvider
	Players     providers.PlayerProvider
	Projections *projections.Loader
	Tables      *valuation.Tables
	Needs       analysis.NeedsAnalyzer
	NewID       engine.IDFunc
	Metrics     *metrics.Recorder
	Logger      *slog.Logger
}

// Service fetches league data, values every roster, and selects trade proposals.
type Service struct {
	league      providers.LeagueProvider
	players     providers.PlayerProvider
	projections *projections.Loader
	tables      *valuation.Tables
	analyzer    *analysis.Analyzer
	selector    engine.Selector
	metrics     *metrics.Recorder
	logger      *slog.Logger
	now         func() time.Time
}

// NewService constructs a Service. Nil tables fall back to the embedded defaults.
func NewService(d Deps) *Service {
	tables := d.Tables
	if tables == nil {
		tables = valuation.DefaultTables()
	}
	return &Service{
		league:      d.League,
		players:     d.Players,
		projections: d.Projections,
		tables:      tables,
		analyzer:    analysis.NewAnalyzer(tables, d.Needs),
		selector:    engine.Selector{NewID: d.NewID},
		metrics:     d.Metrics,
		logger:      d.Logger,
		now:         time.Now,
	}
}

// leagueData is everything fetched for one league.
type leagueData struct {
	rosters     []league.Roster
	users       []league.User
	settings    league.Settings
	players     map[string]players.Info
	projections map[string]float64
}

// Recommend computes trade proposals for req.Username in req.LeagueID.
func (s *Service) Recommend(ctx context.Context, req Request) (Response, error) {
	start := s.now()
	req = req.Normalize()
	resp, err := s.recommend(ctx, req)
	s.metrics.RecordRecommendation(resp.LeagueInfo.Type, len(resp.TradeProposals), s.now().Sub(start), err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Warn(logger, "trade recommendation failed",
			slog.String(logging.FieldLeagueID, req.LeagueID),
			slog.String(logging.FieldUsername, req.Username),
			slog.Any(logging.FieldError, err))
		return resp, err
	}
	logging.Info(logger, "trade recommendation complete",
		slog.String(logging.FieldLeagueID, req.LeagueID),
		slog.String(logging.FieldLeagueType, resp.LeagueInfo.Type),
		slog.Int(logging.FieldCount, len(resp.TradeProposals)),
		slog.Int("players_analyzed", resp.TotalPlayersAnalyzed),
		slog.Int64(logging.FieldDurationMS, s.now().Sub(start).Milliseconds()))
	return resp, nil
}

func (s *Service) recommend(ctx context.Context, req Request) (Response, error) {
	if req.LeagueID == "" {
		return Response{}, fmt.Errorf("league id required")
	}
	data, err := s.fetch(ctx, req.LeagueID)
	if err != nil {
		return Response{}, err
	}

	dynasty := data.settings.IsDynasty()
	teams := s.analyzer.Analyze(analysis.Input{
		Rosters:     data.rosters,
		Users:       data.users,
		Players:     data.players,
		Projections: data.projections,
		Dynasty:     dynasty,
	})

	userIdx := findUserTeam(teams, data.users, req.Username)
	if userIdx < 0 {
		available := make([]string, 0, len(teams))
		for _, t := range teams {
			available = append(available, t.TeamName)
		}
		return Response{LeagueInfo: leagueInfo(data.settings)}, &UserTeamNotFoundError{Username: req.Username, Available: available}
	}
	user := teams[userIdx]
	others := make([]league.TeamRoster, 0, len(teams)-1)
	for i, t := range teams {
		if i != userIdx {
			others = append(others, t)
		}
	}

	result := s.selector.Select(user, others, req.MaxResults)
	for t, n := range result.Considered {
		s.metrics.RecordCandidates(string(t), n)
	}

	resp := Response{
		TradeProposals:   result.Proposals,
		LeagueInfo:       leagueInfo(data.settings),
		TeamAnalyses:     make([]TeamAnalysis, 0, len(teams)),
		UserTeamAnalysis: user,
		Methodology:      s.methodology(),
		Parameters: Parameters{
			MinFairness:   req.MinFairness,
			FairnessLabel: engine.TierFor(req.MinFairness),
			MaxResults:    req.MaxResults,
			SimpleCount:   result.SimpleCount,
			MultiCount:    result.MultiCount,
		},
	}
	for i, t := range teams {
		resp.TotalPlayersAnalyzed += len(t.Players)
		resp.TeamAnalyses = append(resp.TeamAnalyses, summarize(t, i == userIdx))
	}
	return resp, nil
}

// fetch issues every upstream call concurrently. Rosters, users, and settings are required;
// the player database and projections degrade to empty maps.
func (s *Service) fetch(ctx context.Context, leagueID string) (leagueData, error) {
	if s.league == nil {
		return leagueData{}, fmt.Errorf("%w: %w", ErrUpstream, providers.ErrProviderUnavailable)
	}
	logger := logging.FromContext(ctx, s.logger)

	var (
		data leagueData
		raw  []providers.Projection
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rosters, err := s.league.FetchRosters(gctx, leagueID)
		if err != nil {
			return fmt.Errorf("%w: rosters: %w", ErrUpstream, err)
		}
		data.rosters = rosters
		return nil
	})
	g.Go(func() error {
		users, err := s.league.FetchUsers(gctx, leagueID)
		if err != nil {
			return fmt.Errorf("%w: users: %w", ErrUpstream, err)
		}
		data.users = users
		return nil
	})
	g.Go(func() error {
		settings, err := s.league.FetchLeague(gctx, leagueID)
		if err != nil {
			return fmt.Errorf("%w: league: %w", ErrUpstream, err)
		}
		data.settings = settings
		return nil
	})
	g.Go(func() error {
		data.players = s.fetchPlayers(gctx, logger)
		return nil
	})
	g.Go(func() error {
		raw = s.projections.Fetch(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return leagueData{}, err
	}

	var stats projections.Stats
	data.projections, stats = projections.Resolve(raw, data.players)
	logging.Debug(logger, "league data fetched",
		slog.String(logging.FieldLeagueID, leagueID),
		slog.Int("rosters", len(data.rosters)),
		slog.Int("players", len(data.players)),
		slog.Int("projections", stats.Resolved),
		slog.Int("projections_unmatched", stats.Unmatched),
		slog.Int("projections_ambiguous", stats.Ambiguous))
	return data, nil
}

func (s *Service) fetchPlayers(ctx context.Context, logger *slog.Logger) map[string]players.Info {
	if s.players == nil {
		return map[string]players.Info{}
	}
	db, err := s.players.FetchPlayers(ctx)
	if err != nil {
		logging.Warn(logger, "player database unavailable, continuing without", slog.Any(logging.FieldError, err))
		return map[string]players.Info{}
	}
	return db
}

// ValuePlayer values one player, given by id or name, in the league's context.
func (s *Service) ValuePlayer(ctx context.Context, req ValueRequest) (PlayerValuation, error) {
	target := strings.TrimSpace(req.Player)
	if target == "" {
		return PlayerValuation{}, fmt.Errorf("%w: empty query", ErrPlayerNotFound)
	}
	data, err := s.fetch(ctx, strings.TrimSpace(req.LeagueID))
	if err != nil {
		return PlayerValuation{}, err
	}
	info, ok := lookupPlayer(data.players, target)
	if !ok {
		return PlayerValuation{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, target)
	}
	dynasty := data.settings.IsDynasty()
	model := valuation.NewModel(s.tables, valuation.PoolFromMap(data.projections))
	points := data.projections[info.ID]
	return PlayerValuation{
		Player:    info,
		Projected: points,
		Dynasty:   dynasty,
		Breakdown: model.Explain(valuation.Input{
			Name:            info.Name,
			Position:        info.Position,
			ProjectedPoints: points,
			Age:             info.Age,
			Dynasty:         dynasty,
		}),
	}, nil
}

func lookupPlayer(db map[string]players.Info, query string) (players.Info, bool) {
	if info, ok := db[query]; ok {
		info.ID = query
		return info, true
	}
	key := projections.NormalizeName(query)
	var match players.Info
	found := 0
	for id, info := range db {
		if projections.NormalizeName(info.Name) == key {
			info.ID = id
			match = info
			found++
		}
	}
	return match, found == 1
}

// findUserTeam returns the index of the team owned by the member matching username, or -1.
func findUserTeam(teams []league.TeamRoster, users []league.User, username string) int {
	for _, u := range users {
		if !u.Matches(username) {
			continue
		}
		for i, t := range teams {
			if t.OwnerID == u.UserID {
				return i
			}
		}
	}
	return -1
}

func leagueInfo(s league.Settings) LeagueInfo {
	return LeagueInfo{
		Type:              s.Type(),
		UsesDynastyValues: s.IsDynasty(),
		Name:              s.Name,
		RosterPositions:   s.RosterPositions,
	}
}

func summarize(t league.TeamRoster, isUser bool) TeamAnalysis {
	top := append([]players.Player(nil), t.Players...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].EndzoneValue > top[j].EndzoneValue })
	if len(top) > topPlayersPerTeam {
		top = top[:topPlayersPerTeam]
	}
	return TeamAnalysis{
		RosterID:       t.RosterID,
		OwnerID:        t.OwnerID,
		TeamName:       t.TeamName,
		TotalValue:     t.TotalValue,
		PlayerCount:    len(t.Players),
		PositionCounts: t.PositionCounts,
		Needs:          t.Needs,
		Surplus:        t.Surplus,
		TopPlayers:     top,
		IsUser:         isUser,
	}
}

func (s *Service) methodology() Methodology {
	return Methodology{
		Valuation:     "percentile rank of season projection scaled to 1000, then position or QB tier, age curve, and dynasty adjustments",
		TablesVersion: s.tables.Version,
		TradeTypes:    []domain.Type{domain.OneForOne, domain.TwoForTwo, domain.ThreeForThree},
		FairnessTiers: map[string]float64{
			string(domain.VeryStrict):   engine.VeryStrictThreshold,
			string(domain.SomewhatFair): engine.SomewhatFairThreshold,
			string(domain.Fleece):       0,
		},
		Selection: "half simple and half multi-player trades, each ranked by fairness, merged and ranked again",
	}
}
