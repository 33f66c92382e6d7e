package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/propsbot/propsbot/config"
	"github.com/propsbot/propsbot/internal/directory"
	"github.com/propsbot/propsbot/internal/github"
	"github.com/propsbot/propsbot/internal/log"
	"github.com/propsbot/propsbot/internal/output"
	"github.com/propsbot/propsbot/internal/service"
)

// pipeline bundles everything one attribution run needs.
type pipeline struct {
	cfg *config.Config
	gh  *github.Client
	svc *service.Service
	ref service.PRRef
}

// NewCmdList creates the list command.
func NewCmdList(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the attribution list for a pull request (same as root propsbot)",
		Long: `Gathers commit authors, reviewers, commenters, and linked-issue
reporters for a pull request, resolves their directory identities, and
prints the attribution list.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	addListFlags(cmd, opts)
	return cmd
}

// addListFlags adds the shared pipeline flags to a command.
func addListFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Repo, "repo", "R", "", "Target repository as owner/name (defaults to $GITHUB_REPOSITORY)")
	cmd.Flags().IntVarP(&opts.Number, "pr", "p", 0, "Pull request number (defaults to $PR_NUMBER)")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (text, trailers, json)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
}

func runList(cmd *cobra.Command, opts *Options) error {
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
		fmt.Fprintln(os.Stderr, "No contributors found.")
		return nil
	}

	format := output.Format(opts.Format)
	if format == "" {
		format = output.Format(p.cfg.DefaultFormat)
	}

	formatter := output.NewFormatter(format)
	if text, ok := formatter.(*output.TextFormatter); ok {
		text.Color = !opts.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
	}

	return formatter.Format(report, os.Stdout)
}

// buildPipeline loads config, authenticates, and wires the run's sources.
func buildPipeline(opts *Options) (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	token := cfg.GetGitHubToken()
	if token == "" {
		return nil, fmt.Errorf("GitHub token not configured. Set the GITHUB_TOKEN environment variable")
	}

	gh, err := github.NewClient(token)
	if err != nil {
		return nil, err
	}

	ref, err := resolveRef(opts)
	if err != nil {
		return nil, err
	}

	dir := directory.NewClient(cfg.GetDirectoryEndpoint())
	svc := service.New(gh, gh, dir, cfg.GetExcludedLogins(), cfg.GetDirectoryDomain())

	return &pipeline{cfg: cfg, gh: gh, svc: svc, ref: ref}, nil
}

// resolveRef determines the target pull request from flags, falling back
// to the environment variables a GitHub Actions workflow provides.
func resolveRef(opts *Options) (service.PRRef, error) {
	repo := opts.Repo
	if repo == "" {
		repo = os.Getenv("GITHUB_REPOSITORY")
	}
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return service.PRRef{}, fmt.Errorf("invalid repository %q: expected owner/name (use --repo or $GITHUB_REPOSITORY)", repo)
	}

	number := opts.Number
	if number == 0 {
		if env := os.Getenv("PR_NUMBER"); env != "" {
			n, err := strconv.Atoi(env)
			if err != nil {
				return service.PRRef{}, fmt.Errorf("invalid $PR_NUMBER %q: %w", env, err)
			}
			number = n
		}
	}
	if number <= 0 {
		return service.PRRef{}, fmt.Errorf("pull request number required (use --pr or $PR_NUMBER)")
	}

	return service.PRRef{Owner: parts[0], Repo: parts[1], Number: number}, nil
}
