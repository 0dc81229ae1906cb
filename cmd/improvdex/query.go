package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/improvdex"
	"github.com/kailas-cloud/improvdex/internal/domain/theme"
	"github.com/kailas-cloud/improvdex/internal/transport/cli"
)

const defaultCatalog = "data/games.json"

// catalogFlags are shared by the commands that read a catalog directly.
type catalogFlags struct {
	catalog string
	theme   string
}

func (f *catalogFlags) bind(cmd *cobra.Command) {
	def := os.Getenv("IMPROVDEX_CATALOG")
	if def == "" {
		def = defaultCatalog
	}
	cmd.Flags().StringVar(&f.catalog, "catalog", def, "catalog file path or http(s) URL (env IMPROVDEX_CATALOG)")
	cmd.Flags().StringVar(&f.theme, "theme", string(theme.Default()), "color theme: light or dark")
}

func (f *catalogFlags) open(cmd *cobra.Command) (*improvdex.Catalog, *cli.Renderer, error) {
	t, err := theme.Parse(f.theme)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck // message already names the flag value
	}
	cat, err := improvdex.Open(cmd.Context(), f.catalog)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	out := cmd.OutOrStdout()
	return cat, cli.NewRenderer(out, cli.NewStyles(out, t)), nil
}

func newSearchCmd() *cobra.Command {
	var (
		flags      catalogFlags
		category   string
		difficulty string
		minPlayers int
		maxPlayers int
		audience   string
	)

	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Search and filter games",
		Long: `Searches game names, setup, rules, tips, examples, tags and categories
for the given text (case-insensitive), then applies the attribute filters.

Examples:
  improvdex search freeze
  improvdex search --category "Warm-ups" --max-players 8
  improvdex search scene --difficulty intermediate --audience yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, r, err := flags.open(cmd)
			if err != nil {
				return err
			}

			q := cat.Query().Category(category).Difficulty(improvdex.Difficulty(difficulty))
			if len(args) == 1 {
				q = q.Text(args[0])
			}
			if cmd.Flags().Changed("min-players") {
				q = q.MinPlayers(minPlayers)
			}
			if cmd.Flags().Changed("max-players") {
				q = q.MaxPlayers(maxPlayers)
			}
			if cmd.Flags().Changed("audience") {
				b, err := parseYesNo(audience)
				if err != nil {
					return err
				}
				q = q.Audience(b)
			}

			games, err := q.Run()
			if err != nil {
				return err
			}
			return r.Cards(games)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&category, "category", "", "exact category name")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "one of "+difficultyList())
	cmd.Flags().IntVar(&minPlayers, "min-players", 0, "games whose minimum cast is at least this")
	cmd.Flags().IntVar(&maxPlayers, "max-players", 0, "games whose maximum cast is at most this")
	cmd.Flags().StringVar(&audience, "audience", "", "audience participation: yes or no")
	return cmd
}

func newShowCmd() *cobra.Command {
	var flags catalogFlags

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full details of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, r, err := flags.open(cmd)
			if err != nil {
				return err
			}
			g, err := cat.Game(args[0])
			if err != nil {
				return err
			}
			return r.Details(g)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	var flags catalogFlags

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the distinct game categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, r, err := flags.open(cmd)
			if err != nil {
				return err
			}
			return r.Categories(cat.Categories())
		},
	}
	flags.bind(cmd)
	return cmd
}

func parseYesNo(s string) (bool, error) {
	switch s {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("--audience must be yes or no, got %q", s)
	}
}

func difficultyList() string {
	levels := improvdex.Difficulties()
	names := make([]string, len(levels))
	for i, d := range levels {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
