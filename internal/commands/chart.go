package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contafacil-dev/contafacil/internal/model"
	"github.com/contafacil-dev/contafacil/internal/plan"
)

func newChartCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "chart [pymes|comunidades]",
		Short:     "Print a built-in chart of accounts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(model.CatalogPymes), string(model.CatalogComunidades)},
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := model.CatalogVariant(args[0])
			if variant != model.CatalogPymes && variant != model.CatalogComunidades {
				return fmt.Errorf("unknown catalog variant %q", args[0])
			}

			for _, a := range plan.ForVariant(variant).All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-45s %s\n", a.Code, a.Description, a.Class)
			}
			return nil
		},
	}
}
