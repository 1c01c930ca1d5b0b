package testutil

import (
	"fmt"

	apptrades "github.com/preston-bernstein/endzone-trade-service/internal/app/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/metrics"
	"github.com/preston-bernstein/endzone-trade-service/internal/projections"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers/fixture"
)

// FixtureLeagueID is the league id served by the built-in fixture.
const FixtureLeagueID = "fixture-league"

// NewFixtureService builds a recommendation service over the built-in fixture league with
// sequential proposal ids.
func NewFixtureService(rec *metrics.Recorder) *apptrades.Service {
	p := fixture.New()
	return apptrades.NewService(apptrades.Deps{
		League:      p,
		Players:     p,
		Projections: projections.NewLoader(p, "2025", nil),
		NewID:       SequentialIDs("trade"),
		Metrics:     rec,
	})
}

// SequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
