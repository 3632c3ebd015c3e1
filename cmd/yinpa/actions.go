package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/engine"
	"github.com/yinpa-bot/yinpa/internal/orchestrators/interaction"
)

func newActCmd(opts *rootOptions) *cobra.Command {
	var strength, tag string

	cmd := &cobra.Command{
		Use:   "act [target] [action] [part]",
		Short: "Act on another user",
		Long: `Act on another user. The target is an id, a name or "random".
Without a part the action's default part is used.

  act bob stroke ears
  act 42 lick --strength soft`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := opts.requireUser()
			if err != nil {
				return err
			}
			s, err := catalog.ParseStrength(strength)
			if err != nil {
				return err
			}
			targetID, err := resolveUser(ctx, opts.app.players, args[0])
			if err != nil {
				return err
			}

			input := &interaction.ActInput{
				InitiatorID: id,
				TargetID:    targetID,
				ActionName:  args[1],
				Strength:    s,
				Context:     tag,
			}
			if len(args) == 3 {
				input.PartName = args[2]
			}

			out, err := opts.app.interactions.Act(ctx, input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			o := out.Outcome
			if o.Overdraft {
				fmt.Fprintf(w, "%s pushed past exhaustion", out.Initiator.Name)
				if o.ReducedLength > 0 {
					fmt.Fprintf(w, " and lost %.2f cm", o.ReducedLength)
				}
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s %s %s's %s (%s) for %.0f s\n",
				out.Initiator.Name, o.Action.Key, out.Target.Name, o.Part.Key, o.Strength, o.ElapsedTime)
			if o.TargetEmitted {
				fmt.Fprintf(w, "%s emitted %.2f ml\n", out.Target.Name, o.Volume)
			} else {
				fmt.Fprintf(w, "%s received %.2f ml\n", out.Target.Name, o.Volume)
			}
			fmt.Fprintf(w, "hp: %s %d, %s %d\n", out.Initiator.Name, out.Initiator.HP, out.Target.Name, out.Target.HP)
			return nil
		},
	}

	cmd.Flags().StringVar(&strength, "strength", "normal", "soft, normal or severe")
	cmd.Flags().StringVar(&tag, "context", "", "tag recorded with the action, e.g. a channel id")
	return cmd
}

func newSoloCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solo [part]",
		Short: "Spend HP on yourself",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := opts.requireUser()
			if err != nil {
				return err
			}
			input := &interaction.SoloInput{UserID: id}
			if len(args) == 1 {
				input.PartName = args[0]
			}

			out, err := opts.app.interactions.Solo(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			o := out.Outcome
			fmt.Fprintf(w, "%s worked on their %s: %+.2f cm, +%.2f sensitivity, -%d hp\n",
				out.User.Name, o.Part.Key, o.Change, o.SensitivityGain, o.HPCost)
			if o.SexChanged {
				fmt.Fprintf(w, "%s changed sides!\n", out.User.Name)
			}
			return nil
		},
	}
}

func newSnatchCmd(opts *rootOptions) *cobra.Command {
	var chest bool

	cmd := &cobra.Command{
		Use:   "snatch [target]",
		Short: "Take length or chest size from another user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := opts.requireUser()
			if err != nil {
				return err
			}
			targetID, err := resolveUser(ctx, opts.app.players, args[0])
			if err != nil {
				return err
			}

			category := engine.SnatchLength
			if chest {
				category = engine.SnatchChest
			}
			out, err := opts.app.interactions.Snatch(ctx, &interaction.SnatchInput{
				InitiatorID: id,
				TargetID:    targetID,
				Category:    category,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			o := out.Outcome
			fmt.Fprintf(w, "%s took %.2f cm from %s\n", out.Initiator.Name, o.Amount, out.Target.Name)
			if !o.InitiatorGained {
				fmt.Fprintln(w, "but had nowhere to keep it")
			}
			if o.TargetSexChanged {
				fmt.Fprintf(w, "%s changed sides!\n", out.Target.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&chest, "chest", false, "snatch chest size instead of length")
	return cmd
}

func newRollCmd(opts *rootOptions) *cobra.Command {
	var chest, depth bool

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Gamble on your length or chest size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			id, err := opts.requireUser()
			if err != nil {
				return err
			}

			var out *interaction.RollOutput
			if chest {
				out, err = opts.app.interactions.RollChest(ctx, &interaction.RollChestInput{UserID: id})
			} else {
				out, err = opts.app.interactions.RollLength(ctx, &interaction.RollLengthInput{UserID: id, Depth: depth})
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s rolled %+.2f cm\n", out.User.Name, out.Outcome.Delta)
			if out.Outcome.SexChanged {
				fmt.Fprintf(w, "%s changed sides!\n", out.User.Name)
			}
			printUser(w, out.User)
			return nil
		},
	}

	cmd.Flags().BoolVar(&chest, "chest", false, "roll chest size")
	cmd.Flags().BoolVar(&depth, "depth", false, "roll depth instead of length (double sex only)")
	cmd.MarkFlagsMutuallyExclusive("chest", "depth")
	return cmd
}
