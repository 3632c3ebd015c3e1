package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/orchestrators/inventory"
)

func parseCount(args []string, at int) (int, error) {
	if len(args) <= at {
		return 1, nil
	}
	n, err := strconv.Atoi(args[at])
	if err != nil {
		return 0, errors.InvalidArgumentf("count %q is not a number", args[at])
	}
	return n, nil
}

func newBuyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "buy [item] [count]",
		Short: "Buy items",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := opts.requireUser()
			if err != nil {
				return err
			}
			count, err := parseCount(args, 1)
			if err != nil {
				return err
			}

			out, err := opts.app.items.Buy(cmd.Context(), &inventory.BuyInput{
				UserID:   id,
				ItemName: args[0],
				Count:    count,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s bought %d %s for %d, now holding %d\n",
				out.User.Name, count, out.Item.Key, out.Charged, out.Owned)
			return nil
		},
	}
}

func newUseCmd(opts *rootOptions) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "use [item] [count]",
		Short: "Use items on yourself or a target",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := opts.requireUser()
			if err != nil {
				return err
			}
			count, err := parseCount(args, 1)
			if err != nil {
				return err
			}

			input := &inventory.UseInput{UserID: id, ItemName: args[0], Count: count}
			if target != "" {
				if input.TargetID, err = resolveUser(ctx, opts.app.players, target); err != nil {
					return err
				}
			}

			out, err := opts.app.items.Use(ctx, input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s used %d %s, %d left\n", out.User.Name, count, out.Item.Key, out.Remaining)
			printUser(w, out.User)
			if out.Target != nil {
				printUser(w, out.Target)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "target id or name")
	return cmd
}

type catalogDump struct {
	Items   []itemView   `yaml:"items,omitempty"`
	Actions []actionView `yaml:"actions,omitempty"`
	Parts   []partView   `yaml:"parts,omitempty"`
	Races   []raceView   `yaml:"races,omitempty"`
}

type itemView struct {
	ID          int      `yaml:"id"`
	Key         string   `yaml:"key"`
	Names       []string `yaml:"names,flow"`
	Description string   `yaml:"description"`
	Price       int      `yaml:"price"`
	Scope       string   `yaml:"scope"`
}

type actionView struct {
	ID          int      `yaml:"id"`
	Key         string   `yaml:"key"`
	Names       []string `yaml:"names,flow"`
	Universal   bool     `yaml:"universal"`
	DefaultPart string   `yaml:"default_part"`
}

type partView struct {
	ID              int      `yaml:"id"`
	Key             string   `yaml:"key"`
	Names           []string `yaml:"names,flow"`
	BaseSensitivity int      `yaml:"base_sensitivity"`
	Optional        bool     `yaml:"optional,omitempty"`
}

type raceView struct {
	ID    int      `yaml:"id"`
	Key   string   `yaml:"key"`
	Names []string `yaml:"names,flow"`
	Parts []string `yaml:"parts,flow,omitempty"`
}

func buildCatalogDump(section string) (*catalogDump, error) {
	dump := &catalogDump{}
	all := section == "" || section == "all"

	if all || section == "items" {
		for _, it := range catalog.Items() {
			dump.Items = append(dump.Items, itemView{
				ID:          int(it.ID),
				Key:         it.Key,
				Names:       it.Names,
				Description: it.Description,
				Price:       it.Price,
				Scope:       it.Scope.String(),
			})
		}
	}
	if all || section == "actions" {
		for _, a := range catalog.Actions() {
			view := actionView{ID: int(a.ID), Key: a.Key, Names: a.Names, Universal: a.Universal}
			if p, err := catalog.BodyPartByID(a.DefaultPart); err == nil {
				view.DefaultPart = p.Key
			}
			dump.Actions = append(dump.Actions, view)
		}
	}
	if all || section == "parts" {
		for _, p := range catalog.BodyParts() {
			dump.Parts = append(dump.Parts, partView{
				ID:              int(p.ID),
				Key:             p.Key,
				Names:           p.Names,
				BaseSensitivity: p.BaseSensitivity,
				Optional:        p.Optional,
			})
		}
	}
	if all || section == "races" {
		for _, r := range catalog.Races() {
			view := raceView{ID: int(r.ID), Key: r.Key, Names: r.Names}
			for _, id := range r.OptionalParts {
				if p, err := catalog.BodyPartByID(id); err == nil {
					view.Parts = append(view.Parts, p.Key)
				}
			}
			dump.Races = append(dump.Races, view)
		}
	}

	if !all && dump.Items == nil && dump.Actions == nil && dump.Parts == nil && dump.Races == nil {
		return nil, errors.InvalidArgumentf("unknown catalog section %q", section)
	}
	return dump, nil
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "catalog [items|actions|parts|races]",
		Short:       "Print the static catalogs as YAML",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) == 1 {
				section = args[0]
			}
			dump, err := buildCatalogDump(section)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(dump); err != nil {
				return fmt.Errorf("failed to encode catalog: %w", err)
			}
			return enc.Close()
		},
	}
}
