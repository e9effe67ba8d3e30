package main

import (
	"context"
	"fmt"

	"github.com/aretw0/sbmlexport/internal/cli"
	"github.com/aretw0/sbmlexport/internal/presentation/tui"
	"github.com/aretw0/sbmlexport/internal/validator"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pathway-id>",
	Short: "Summarize the model a pathway would export to",
	Long: `Builds the SBML model of a pathway without writing it and prints its
element counts, reactions and any validation issues of the source graph.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := cli.ParseIDs(args[0])
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

		doc, g, stats, err := exp.Document(ctx, ids[0])
		if err != nil {
			return fmt.Errorf("failed to build model: %w", err)
		}
		if stats.Skipped > 0 {
			logger.Warn("contributions skipped", "count", stats.Skipped)
		}

		var issues []string
		for _, is := range validator.Check(g, ids[0]) {
			issues = append(issues, is.String())
		}

		out := cmd.OutOrStdout()
		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
			tui.PrintBanner(out)
		}
		return tui.Print(out, tui.Summary(doc, issues))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolP("quiet", "q", false, "Omit the banner")
}
