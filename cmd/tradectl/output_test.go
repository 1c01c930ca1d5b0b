package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	apptrades "github.com/preston-bernstein/endzone-trade-service/internal/app/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/testutil"
)

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{formatTable, formatJSON} {
		if err := validateFormat(f); err != nil {
			t.Fatalf("format %q should be valid: %v", f, err)
		}
	}
	if err := validateFormat("yaml"); err == nil {
		t.Fatalf("expected yaml to be rejected")
	}
}

func fixtureResponse(t *testing.T) apptrades.Response {
	t.Helper()
	resp, err := testutil.NewFixtureService(nil).Recommend(context.Background(), apptrades.Request{
		LeagueID: testutil.FixtureLeagueID,
		Username: "alice",
	})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	return resp
}

func TestWriteRecommendationsTable(t *testing.T) {
	resp := fixtureResponse(t)
	var buf bytes.Buffer
	if err := writeRecommendations(&buf, formatTable, resp); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "FAIRNESS") || !strings.Contains(out, resp.UserTeamAnalysis.TeamName) {
		t.Fatalf("unexpected table output:\n%s", out)
	}
	lines := strings.Count(out, "\n")
	if lines < len(resp.TradeProposals)+3 {
		t.Fatalf("expected a row per proposal, got:\n%s", out)
	}
}

func TestWriteRecommendationsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRecommendations(&buf, formatTable, apptrades.Response{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "no trades found") {
		t.Fatalf("expected empty message, got %q", buf.String())
	}
}

func TestWriteRecommendationsJSON(t *testing.T) {
	resp := fixtureResponse(t)
	var buf bytes.Buffer
	if err := writeRecommendations(&buf, formatJSON, resp); err != nil {
		t.Fatalf("write: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := decoded["trade_proposals"]; !ok {
		t.Fatalf("expected trade_proposals key, got %v", decoded)
	}
}

func TestWriteValuationTable(t *testing.T) {
	v, err := testutil.NewFixtureService(nil).ValuePlayer(context.Background(), apptrades.ValueRequest{
		LeagueID: testutil.FixtureLeagueID,
		Player:   "1001",
	})
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	var buf bytes.Buffer
	if err := writeValuation(&buf, formatTable, v); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Josh Allen", "qb tier", "value"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestResolveUsernamePrefersExplicitUser(t *testing.T) {
	got, err := resolveUsername(context.Background(), "league", "  bob ", "ignored@example.com")
	if err != nil || got != "bob" {
		t.Fatalf("expected bob, got %q %v", got, err)
	}
	if _, err := resolveUsername(context.Background(), "league", "", ""); err == nil {
		t.Fatalf("expected error without user or email")
	}
}
