package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/sbmlexport/internal/cli"
	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export pathways or event lists as SBML",
	Long: `Exports Reactome content. Pick at most one mode:

  -t  a single top level pathway
  -s  every pathway of a species
  -m  a comma separated list of pathways
  -l  a comma separated list of events, written as one model

With no mode every species is exported. Pathway files are named <dbId>.xml,
event lists <modelId>.xml. Ids that are not pathways are logged and skipped.
Use "-o -" to write to standard output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		topLevel, _ := cmd.Flags().GetInt64("toplevelpath")
		species, _ := cmd.Flags().GetInt64("species")
		multiple, _ := cmd.Flags().GetString("multiple")
		events, _ := cmd.Flags().GetString("listevents")
		req := cli.ExportRequest{
			TopLevel: domain.DBID(topLevel),
			Species:  domain.DBID(species),
			Multiple: multiple,
			Events:   events,
			Format:   cfg.Output.Format,
		}
		if _, err := req.Mode(); err != nil {
			logger.Error("nothing exported", "err", err)
			return err
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		exp, res, err := cli.NewExporter(ctx, cfg, logger, nil)
		if err != nil {
			return err
		}
		defer func() {
			if err := res.Close(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("failed to release resources", "err", err)
			}
		}()

		report, err := cli.RunExport(ctx, exp, req, logger)
		if errors.Is(err, context.Canceled) && ctx.Signal() != nil {
			logger.Warn("export interrupted", "signal", ctx.Signal().String(), "written", len(report.Written))
		}
		if err := cli.HandleExecutionError(err); err != nil {
			return err
		}
		if cfg.Output.Dir != cli.StdoutDir {
			cli.PrintSystemMessage(cmd.ErrOrStderr(), "%d written, %d skipped", len(report.Written), len(report.Skipped))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	flags := exportCmd.Flags()
	flags.Int64P("toplevelpath", "t", 0, "Export one pathway by dbId")
	flags.Int64P("species", "s", 0, "Export every pathway of a species by dbId")
	flags.StringP("multiple", "m", "", "Export a comma separated list of pathway dbIds")
	flags.StringP("listevents", "l", "", "Export a comma separated list of event dbIds as one model")
	flags.StringP("outdir", "o", "", fmt.Sprintf("Output directory, %q for stdout (default \".\")", cli.StdoutDir))
	flags.StringP("format", "f", "", "Output format: sbml (or 0) or biopax3 (default sbml)")
}
