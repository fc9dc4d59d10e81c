package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	resultadapter "github.com/latifur-rahman/campus-portal-cli/internal/adapters/render/result"
	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
)

func newResultCmd(app *app) *cobra.Command {
	var semesterID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "result",
		Short: "Fetch and display a semester result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResultFetch(cmd, app, semesterID, asJSON)
		},
	}

	cmd.Flags().StringVar(&semesterID, "semester", "", "Semester ID (default: first available)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runResultFetch(cmd *cobra.Command, app *app, semesterID string, asJSON bool) error {
	var aggregate domain.ResultAggregate

	fetch := func(ctx context.Context) error {
		var err error
		aggregate, err = app.students.SemesterResult(ctx, semesterID)
		return err
	}

	if asJSON {
		if err := fetch(cmd.Context()); err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(aggregate)
	}

	if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching semester result...", fetch); err != nil {
		return err
	}

	rendered, err := app.resultRenderer(aggregate, resultadapter.RenderOptions{ShowStanding: true})
	if err != nil {
		return fmt.Errorf("render result: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func newGradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "Show the grading scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), resultadapter.RenderGradingScale())
			return err
		},
	}
}
