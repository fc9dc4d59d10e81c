package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "campus",
		Short:         "Campus portal CLI: login, results, profile and payments",
		Long:          "campus is a student-portal client for the terminal: log in with your student ID, check semester results and SGPA, and view your profile and payment status.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newResultCmd(app),
		newProfileCmd(app),
		newPaymentsCmd(app),
		newGradesCmd(),
	)

	return rootCmd
}
