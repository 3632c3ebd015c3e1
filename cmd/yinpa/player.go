package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/orchestrators/player"
)

func newJoinCmd(opts *rootOptions) *cobra.Command {
	var sex, race string

	cmd := &cobra.Command{
		Use:   "join [name]",
		Short: "Create the acting user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := opts.requireUser()
			if err != nil {
				return err
			}
			s, err := catalog.ParseSex(sex)
			if err != nil {
				return err
			}

			out, err := opts.app.players.Join(cmd.Context(), &player.JoinInput{
				ID:       id,
				Name:     args[0],
				Sex:      s,
				RaceName: race,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", out.User.Name)
			printUser(cmd.OutOrStdout(), out.User)
			return nil
		},
	}

	cmd.Flags().StringVar(&sex, "sex", "single", "single, double or none")
	cmd.Flags().StringVar(&race, "race", "", "race name; empty joins as a human")
	return cmd
}

func newInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info [name-or-id]",
		Short: "Show a user's state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var id int64
			var err error
			if len(args) == 1 {
				id, err = resolveUser(ctx, opts.app.players, args[0])
			} else {
				id, err = opts.requireUser()
			}
			if err != nil {
				return err
			}

			out, err := opts.app.players.Get(ctx, &player.GetInput{ID: id})
			if err != nil {
				return err
			}
			printUser(cmd.OutOrStdout(), out.User)
			return nil
		},
	}
}

func newLeaveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "leave",
		Short: "Delete the acting user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := opts.requireUser()
			if err != nil {
				return err
			}
			if _, err := opts.app.players.Leave(cmd.Context(), &player.LeaveInput{ID: id}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goodbye.")
			return nil
		},
	}
}

func newRenameCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [name]",
		Short: "Change the acting user's name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := opts.requireUser()
			if err != nil {
				return err
			}
			out, err := opts.app.players.Rename(cmd.Context(), &player.RenameInput{ID: id, Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", out.OldName, out.User.Name)
			return nil
		},
	}
}

func newRankCmd(opts *rootOptions) *cobra.Command {
	var limit int
	var restrict []int64

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Show the leaderboards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := opts.app.players.Leaderboard(cmd.Context(), &player.LeaderboardInput{
				ViewerID:   opts.userID,
				Limit:      limit,
				RestrictTo: restrict,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, b := range out.Boards {
				fmt.Fprintf(w, "== %s (%d) ==\n", b.Metric, b.Total)
				printEntries(w, b.Top, 1)
				if len(b.Bottom) > 0 {
					fmt.Fprintln(w, "  ...")
					printEntries(w, b.Bottom, b.Total-len(b.Bottom)+1)
				}
				if out.Viewer != nil && b.ViewerRank > 0 {
					fmt.Fprintf(w, "  you: #%d\n", b.ViewerRank)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", player.DefaultLeaderboardLimit, "entries per board")
	cmd.Flags().Int64SliceVar(&restrict, "only", nil, "rank only these user ids")
	return cmd
}

func printEntries(w io.Writer, entries []player.Entry, from int) {
	for i, e := range entries {
		fmt.Fprintf(w, "  %d. %s  %.2f\n", from+i, e.Name, e.Value)
	}
}

// resolveUser accepts a numeric id, "random", or a display name
func resolveUser(ctx context.Context, players player.Service, ref string) (int64, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return id, nil
	}
	if strings.EqualFold(ref, "random") {
		out, err := players.Random(ctx, &player.RandomInput{})
		if err != nil {
			return 0, err
		}
		return out.User.ID, nil
	}
	out, err := players.GetByName(ctx, &player.GetByNameInput{Name: ref})
	if err != nil {
		return 0, err
	}
	return out.User.ID, nil
}
