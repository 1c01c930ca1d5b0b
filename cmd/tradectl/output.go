package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	apptrades "github.com/preston-bernstein/endzone-trade-service/internal/app/trades"
	domain "github.com/preston-bernstein/endzone-trade-service/internal/domain/trades"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (table|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRecommendations(w io.Writer, format string, resp apptrades.Response) error {
	if format == formatJSON {
		return writeJSON(w, resp)
	}
	fmt.Fprintf(w, "%s (%s), team %s, %d players analyzed\n\n",
		resp.LeagueInfo.Name, resp.LeagueInfo.Type, resp.UserTeamAnalysis.TeamName, resp.TotalPlayersAnalyzed)
	if len(resp.TradeProposals) == 0 {
		fmt.Fprintln(w, "no trades found")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTYPE\tFAIRNESS\tTIER\tWITH\tGIVE\tGET\tNET")
	for i, p := range resp.TradeProposals {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%s\t%s\t%s\t%+d\n",
			i+1, p.TradeType, p.FairnessScore, p.FairnessTier, p.TeamB.TeamName,
			assetList(p.TeamA.Giving), assetList(p.TeamA.Receiving), p.TeamA.NetValue)
	}
	return tw.Flush()
}

func writeValuation(w io.Writer, format string, v apptrades.PlayerValuation) error {
	if format == formatJSON {
		return writeJSON(w, v)
	}
	b := v.Breakdown
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "player\t%s (%s, %s)\n", v.Player.Name, v.Player.Position, v.Player.Team)
	fmt.Fprintf(tw, "projected\t%.1f\n", v.Projected)
	fmt.Fprintf(tw, "base\t%d\n", b.Base)
	if b.Tier != "" {
		fmt.Fprintf(tw, "qb tier\t%s\n", b.Tier)
	}
	fmt.Fprintf(tw, "position\tx%.2f -> %d\n", b.PositionFactor, b.AfterPosition)
	fmt.Fprintf(tw, "age\tx%.3f -> %d\n", b.AgeFactor, b.AfterAge)
	if v.Dynasty {
		fmt.Fprintf(tw, "dynasty\tx%.2f\n", b.DynastyFactor)
	}
	fmt.Fprintf(tw, "value\t%d\n", b.Value)
	return tw.Flush()
}

func assetList(assets []domain.Asset) string {
	names := make([]string, 0, len(assets))
	for _, a := range assets {
		names = append(names, fmt.Sprintf("%s (%d)", a.Name, a.Value))
	}
	return strings.Join(names, ", ")
}
