package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "propsbot",
		Short: "Pull-request contributor attribution",
		Long: `A CLI tool that gathers everyone who contributed to a pull request
(commit authors, reviewers, commenters, linked-issue reporters), resolves
their community-directory identities, and renders an attribution list for
comments and commit trailers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Add list flags to the root command so `propsbot` and
	// `propsbot list` work identically
	addListFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdList(opts))
	rootCmd.AddCommand(NewCmdComment(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}
