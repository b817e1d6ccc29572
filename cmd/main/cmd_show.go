package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pokedex/viewer/internal/render"
	"pokedex/viewer/internal/service"
)

var showCmd = &cobra.Command{
	Use:   "show [id|name]",
	Short: "Show one creature in detail",
	Long: `Shows stats, abilities, description and sprites for one creature,
with the previous and next numbers wrapping around the loaded page.`,
	Example: `  pokedex show 25
  pokedex show bulbasaur`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detail, err := app.Catalog.Detail(cmd.Context(), args[0])
		if err != nil {
			return errors.New(service.UserMessage(err))
		}

		fmt.Fprint(cmd.OutOrStdout(), render.Detail(detail.Pokemon, detail.Prev, detail.Next))
		return nil
	},
}
