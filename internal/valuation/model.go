package valuation

import (
	"math"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
)

// Input is everything the model needs to value one player.
type Input struct {
	Name            string
	Position        players.Position
	ProjectedPoints float64
	Age             int
	Dynasty         bool
}

// Breakdown records every intermediate value of a valuation.
type Breakdown struct {
	Base           int     `json:"base"`
	Tier           string  `json:"tier,omitempty"`
	PositionFactor float64 `json:"position_factor"`
	AfterPosition  int     `json:"after_position"`
	AgeFactor      float64 `json:"age_factor"`
	AfterAge       int     `json:"after_age"`
	DynastyFactor  float64 `json:"dynasty_factor"`
	Value          int     `json:"value"`
	TablesVersion  string  `json:"tables_version,omitempty"`
}

// Model computes Endzone Values against a pool using heuristic tables.
type Model struct {
	tables *Tables
	pool   Pool
}

// NewModel returns a model; nil tables fall back to the embedded defaults.
func NewModel(tables *Tables, pool Pool) *Model {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Model{tables: tables, pool: pool}
}

// Tables exposes the heuristic tables the model was built with.
func (m *Model) Tables() *Tables { return m.tables }

// Value returns the Endzone Value for in.
func (m *Model) Value(in Input) int {
	return m.Explain(in).Value
}

// Explain runs the valuation and returns every step.
func (m *Model) Explain(in Input) Breakdown {
	b := Breakdown{PositionFactor: 1, AgeFactor: 1, DynastyFactor: 1, TablesVersion: m.tables.Version}
	if in.ProjectedPoints <= 0 {
		return b
	}
	b.Base = m.pool.Base(in.ProjectedPoints)

	pos := string(players.NormalizePosition(string(in.Position)))
	if pos == string(players.QB) {
		tier := m.tables.QBTier(in.Name)
		b.Tier = tier.Name
		b.PositionFactor = tier.Multiplier
	} else {
		b.PositionFactor = m.tables.PositionMultiplier(pos)
	}
	b.AfterPosition = round(float64(b.Base) * b.PositionFactor)

	b.AgeFactor = 1 + m.tables.AgeDelta(pos, in.Age)*m.tables.Impact(in.Dynasty)
	b.AfterAge = round(float64(b.AfterPosition) * b.AgeFactor)

	value := b.AfterAge
	if in.Dynasty {
		b.DynastyFactor = m.tables.DynastyMultiplier(pos)
		value = round(float64(value) * b.DynastyFactor)
	}
	if value < 0 {
		value = 0
	}
	b.Value = value
	return b
}

func round(v float64) int {
	return int(math.Round(v))
}
