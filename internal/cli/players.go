package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Roster commands",
	}

	cmd.AddCommand(newPlayersListCmd())
	cmd.AddCommand(newPlayersAddCmd())
	cmd.AddCommand(newPlayersDeleteCmd())
	cmd.AddCommand(newPlayersTeamsCmd())

	return cmd
}

func newPlayersListCmd() *cobra.Command {
	var team, name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players, optionally filtered by team or name",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if team != "" {
				query.Set("team", team)
			}
			if name != "" {
				query.Set("name", name)
			}
			path := "/api/players"
			if len(query) > 0 {
				path += "?" + query.Encode()
			}

			var result []User
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Filter by team")
	cmd.Flags().StringVar(&name, "name", "", "Filter by name substring")

	return cmd
}

func newPlayersAddCmd() *cobra.Command {
	var name, email, role, team, pass string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a roster entry (coach/admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"name": name}
			if email != "" {
				req["email"] = email
			}
			if role != "" {
				req["role"] = role
			}
			if team != "" {
				req["team"] = team
			}
			if pass != "" {
				req["password"] = pass
			}

			var result MeResult
			if err := client.Post("/api/users", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.User)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&role, "role", "", "Role: player, coach, admin (default player)")
	cmd.Flags().StringVar(&team, "team", "", "Team")
	cmd.Flags().StringVar(&pass, "pass", "", "Password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a player by name (coach/admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/players/%s", url.PathEscape(args[0]))
			if err := client.Delete(path, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Deleted")
			return nil
		},
	}
}

func newPlayersTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List distinct team names",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []string
			if err := client.Get("/api/teams", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.Print(result)
				return nil
			}
			for _, team := range result {
				fmt.Println(team)
			}
			return nil
		},
	}
}
