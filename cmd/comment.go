package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/propsbot/propsbot/internal/constants"
	"github.com/propsbot/propsbot/internal/log"
)

// NewCmdComment creates the comment command.
func NewCmdComment(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Post the attribution list as a pull request comment",
		Long: `Runs the attribution pipeline and posts the result as a comment on
the pull request. Reruns update the existing propsbot comment instead of
posting a duplicate.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runComment(cmd, opts)
		},
	}

	addListFlags(cmd, opts)
	return cmd
}

func runComment(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()
	log.Initialize(opts.Verbosity, os.Stderr)

	p, err := buildPipeline(opts)
	if err != nil {
		return err
	}

	report, err := p.svc.Run(ctx, p.ref)
	if err != nil {
		return err
	}

	if report.Empty() {
		log.Info("no contributors found, skipping comment", "pr", p.ref.String())
		fmt.Fprintln(os.Stderr, "No contributors found, nothing to post.")
		return nil
	}

	body := constants.CommentMarker + "\n" + report.Text

	url, err := p.gh.UpsertComment(ctx, p.ref.Owner, p.ref.Repo, p.ref.Number, constants.CommentMarker, body)
	if err != nil {
		return err
	}

	fmt.Println(url)
	return nil
}
