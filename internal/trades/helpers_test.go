package trades

import (
	"fmt"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
)

func team(owner string, values ...int) league.TeamRoster {
	t := league.TeamRoster{OwnerID: owner, TeamName: "Team " + owner}
	for i, v := range values {
		t.Players = append(t.Players, players.Player{
			Info:         players.Info{ID: fmt.Sprintf("%s-%d", owner, i), Name: fmt.Sprintf("%s %d", owner, i), Position: players.WR},
			EndzoneValue: v,
		})
	}
	return t
}

func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
