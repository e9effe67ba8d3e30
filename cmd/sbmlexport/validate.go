package main

import (
	"context"
	"fmt"

	"github.com/aretw0/sbmlexport/internal/cli"
	"github.com/aretw0/sbmlexport/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <pathway-id>...",
	Short: "Check source graphs for consistency",
	Long: `Loads the graph below each pathway and reports dangling participant,
compartment and component references, composite cycles and entities
without a compartment.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := cli.ParseIDs(joinArgs(args))
		if err != nil {
			return err
		}
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		exp, res, err := cli.NewExporter(ctx, cfg, logger, nil)
		if err != nil {
			return err
		}
		defer res.Close(ctx)

		g, err := exp.Source().Graph(ctx, ids...)
		if err != nil {
			return fmt.Errorf("failed to load graph: %w", err)
		}
		if err := validator.ValidateGraph(g, ids...); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Graph is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
