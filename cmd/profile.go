package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latifur-rahman/campus-portal-cli/internal/application"
)

func newProfileCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show personal and academic information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var profile application.Profile

			fetch := func(ctx context.Context) error {
				var err error
				profile, err = app.students.Profile(ctx)
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(profile)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching profile...", fetch); err != nil {
				return err
			}

			writeProfile(cmd, profile)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeProfile(cmd *cobra.Command, profile application.Profile) {
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "%s (%s)\n", profile.Personal.Name, profile.StudentID)
	_, _ = fmt.Fprintf(out, "%s, %s\n\n", profile.Academic.Program, profile.Academic.Department)

	rows := []struct {
		label string
		value string
	}{
		{"Batch", profile.Academic.Batch},
		{"Current Semester", profile.Academic.CurrentSemester},
		{"Credits Completed", fmt.Sprintf("%.0f of %.0f", profile.Academic.CreditCompleted, profile.Academic.TotalCredits)},
		{"CGPA", profile.Academic.CGPA},
		{"Academic Status", profile.Academic.Status},
		{"Email", profile.Personal.Email},
		{"Phone", profile.Personal.Phone},
		{"Date of Birth", profile.Personal.DateOfBirth},
		{"Gender", profile.Personal.Gender},
		{"Blood Group", profile.Personal.BloodGroup},
		{"Address", profile.Personal.Address},
		{"Guardian", fmt.Sprintf("%s (%s)", profile.Personal.GuardianName, profile.Personal.GuardianRelation)},
		{"Guardian Phone", profile.Personal.GuardianPhone},
	}

	for _, row := range rows {
		if row.value == "" || row.value == " ()" {
			continue
		}
		_, _ = fmt.Fprintf(out, "%-18s %s\n", row.label+":", row.value)
	}
}
