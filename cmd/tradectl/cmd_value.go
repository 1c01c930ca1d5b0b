package main

import (
	"fmt"

	"github.com/spf13/cobra"

	apptrades "github.com/preston-bernstein/endzone-trade-service/internal/app/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/server"
)

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Explain one player's Endzone Value in a league",
	Long: `Value a single player, by id or full name, against the league's projection pool
and print every step of the calculation.

Examples:
  tradectl value --league 1048 --player "Josh Allen"
  tradectl value --league 1048 --player 4046 --format json`,
	RunE: runValue,
}

var (
	valueLeague string
	valuePlayer string
	valueFormat string
)

func init() {
	rootCmd.AddCommand(valueCmd)

	valueCmd.Flags().StringVar(&valueLeague, "league", "", "League id (required)")
	valueCmd.Flags().StringVar(&valuePlayer, "player", "", "Player id or full name (required)")
	valueCmd.Flags().StringVar(&valueFormat, "format", formatTable, "Output format (table|json)")
	_ = valueCmd.MarkFlagRequired("league")
	_ = valueCmd.MarkFlagRequired("player")
}

func runValue(cmd *cobra.Command, args []string) error {
	if err := validateFormat(valueFormat); err != nil {
		return err
	}
	svc, _, err := server.BuildService(cfg, logger, nil)
	if err != nil {
		return err
	}
	v, err := svc.ValuePlayer(cmd.Context(), apptrades.ValueRequest{LeagueID: valueLeague, Player: valuePlayer})
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	return writeValuation(cmd.OutOrStdout(), valueFormat, v)
}
