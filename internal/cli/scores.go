package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Session score commands",
	}

	cmd.AddCommand(newScoresListCmd())
	cmd.AddCommand(newScoresAddCmd())

	return cmd
}

func newScoresListCmd() *cobra.Command {
	var playerID, locationID int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if playerID != 0 {
				query.Set("player_id", strconv.Itoa(playerID))
			}
			if locationID != 0 {
				query.Set("location_id", strconv.Itoa(locationID))
			}
			path := "/api/scores"
			if len(query) > 0 {
				path += "?" + query.Encode()
			}

			var result []Score
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&playerID, "player", 0, "Filter by player id")
	cmd.Flags().IntVar(&locationID, "location", 0, "Filter by location id")

	return cmd
}

func newScoresAddCmd() *cobra.Command {
	var playerID, locationID int
	var date, level, opponent string
	var woods []int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a session of three woods for a player (coach/admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(woods) != 3 {
				return fmt.Errorf("--woods requires exactly three values, got %d", len(woods))
			}

			req := map[string]any{
				"player_id": playerID,
				"scores":    woods,
			}
			if date != "" {
				req["date"] = date
			}
			if locationID != 0 {
				req["location_id"] = locationID
			}
			if level != "" {
				req["level"] = level
			}
			if opponent != "" {
				req["opponent"] = opponent
			}

			var result IDResult
			if err := client.Post("/api/scores", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&playerID, "player", 0, "Player id (required)")
	cmd.Flags().IntSliceVar(&woods, "woods", nil, "Three woods, e.g. --woods 120,150,130 (required)")
	cmd.Flags().StringVar(&date, "date", "", "Session date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&locationID, "location", 0, "Location id")
	cmd.Flags().StringVar(&level, "level", "", "Level")
	cmd.Flags().StringVar(&opponent, "opponent", "", "Opponent")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("woods")

	return cmd
}
