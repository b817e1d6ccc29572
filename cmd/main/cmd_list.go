package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pokedex/viewer/internal/domain"
	"pokedex/viewer/internal/render"
	"pokedex/viewer/internal/service"
)

type queryFlags struct {
	search   string
	typeName string
	sort     string
	desc     bool
	page     int
	pageSize int
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "case-insensitive name filter")
	cmd.Flags().StringVarP(&f.typeName, "type", "t", "", "only show this type")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort key: id or name (default: API order)")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&f.page, "page", 1, "page to show")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "items per page (0 shows all)")
}

func (f *queryFlags) query() (domain.Query, error) {
	key, err := domain.ParseSortKey(f.sort)
	if err != nil {
		return domain.Query{}, err
	}

	t := domain.TypeName(f.typeName)
	if t != "" && !t.IsKnown() {
		return domain.Query{}, fmt.Errorf("unknown type %q", f.typeName)
	}

	q := domain.Query{
		Text:       f.search,
		Sort:       key,
		Descending: f.desc,
		Page:       f.page,
		PageSize:   f.pageSize,
	}
	if t != "" {
		q = q.ToggleType(t)
	}
	return q, nil
}

var (
	listFlags    queryFlags
	galleryFlags queryFlags
	columns      int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List creatures, optionally filtered and sorted",
	Example: `  pokedex list --search char
  pokedex list --sort name --desc --page-size 20`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := listFlags.query()
		if err != nil {
			return err
		}

		page, err := app.Catalog.Visible(cmd.Context(), q)
		if err != nil {
			return errors.New(service.UserMessage(err))
		}

		fmt.Fprint(cmd.OutOrStdout(), render.List(page))
		return nil
	},
}

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Show creatures as cards with a type filter",
	Example: `  pokedex gallery --type fire
  pokedex gallery --columns 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := galleryFlags.query()
		if err != nil {
			return err
		}

		page, err := app.Catalog.Visible(cmd.Context(), q)
		if err != nil {
			return errors.New(service.UserMessage(err))
		}

		fmt.Fprint(cmd.OutOrStdout(), render.Gallery(page, q.Type, columns))
		return nil
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Show the known types and their colours",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range domain.Types {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", render.Badge(t), t.Color())
		}
		return nil
	},
}

func init() {
	listFlags.register(listCmd)
	galleryFlags.register(galleryCmd)
	galleryCmd.Flags().IntVar(&columns, "columns", 4, "cards per row")
}
