package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
)

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.auth.Session(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrNoSession) || errors.Is(err, domain.ErrMalformedToken) {
					return errors.New("not logged in")
				}
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(session.UserInfo())
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Logged in as %s\n", session.StudentID)
			switch session.Kind {
			case domain.SessionSimple:
				_, _ = fmt.Fprintf(out, "session issued: %s\n", session.IssuedAt.Format("15:04 on 02 Jan 2006"))
				_, _ = fmt.Fprintf(out, "session expires: %s\n", session.IssuedAt.Add(domain.SessionMaxAge).Format("15:04 on 02 Jan 2006"))
			case domain.SessionExternal:
				_, _ = fmt.Fprintf(out, "session expires: %s\n", session.ExpiresAt.Format("15:04 on 02 Jan 2006"))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
