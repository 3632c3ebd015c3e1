package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/repositories/user"
)

func newCheckStoreCmd(opts *rootOptions) *cobra.Command {
	var purge, yes bool

	cmd := &cobra.Command{
		Use:   "check-store",
		Short: "Scan the redis store for user records that no longer load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.app.redis == nil {
				return errors.InvalidArgument("check-store needs the redis backend")
			}
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			report, err := user.CheckRedis(ctx, opts.app.redis)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "Checked %d records, found %d corrupted\n", report.Checked, len(report.Corrupt))
			if len(report.Corrupt) == 0 {
				return nil
			}
			for _, c := range report.Corrupt {
				fmt.Fprintf(w, "  - %s: %s\n", c.Key, c.Reason)
			}
			if !purge {
				return nil
			}

			if !yes {
				fmt.Fprint(w, "Delete these records? (yes/no): ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if strings.TrimSpace(answer) != "yes" {
					fmt.Fprintln(w, "Aborted, no changes made")
					return nil
				}
			}

			if err := user.PurgeRedis(ctx, opts.app.redis, report.Corrupt); err != nil {
				return err
			}
			fmt.Fprintf(w, "Deleted %d records\n", len(report.Corrupt))
			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "delete", false, "delete corrupted records")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}
