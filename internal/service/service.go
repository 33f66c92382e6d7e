// Package service orchestrates one attribution run: fetch raw
// contribution data, aggregate it, reconcile identities, render.
package service

import (
	"context"
	"fmt"

	"github.com/propsbot/propsbot/internal/log"
	"github.com/propsbot/propsbot/internal/props"
)

// ContributionFetcher retrieves the raw per-channel author data for one
// pull request. This interface enables testing the pipeline without a
// live API.
type ContributionFetcher interface {
	FetchContributions(ctx context.Context, owner, repo string, number int) (props.Contributions, error)
}

// PRRef identifies the pull request being attributed.
type PRRef struct {
	Owner  string
	Repo   string
	Number int
}

func (r PRRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// Service runs the attribution pipeline against its configured sources.
type Service struct {
	fetcher         ContributionFetcher
	profiles        props.ProfileSource
	directory       props.DirectorySource
	excludedLogins  []string
	directoryDomain string
}

// New creates a Service wired to the given sources.
func New(fetcher ContributionFetcher, profiles props.ProfileSource, directory props.DirectorySource, excludedLogins []string, directoryDomain string) *Service {
	return &Service{
		fetcher:         fetcher,
		profiles:        profiles,
		directory:       directory,
		excludedLogins:  excludedLogins,
		directoryDomain: directoryDomain,
	}
}

// Run executes the full pipeline for one pull request and returns the
// final report. Every stage completes before the next begins; any
// failure aborts the run with no partial output.
func (s *Service) Run(ctx context.Context, ref PRRef) (*props.Report, error) {
	log.Info("gathering contributions", "pr", ref.String())

	data, err := s.fetcher.FetchContributions(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return nil, err
	}

	roster := props.Aggregate(data, s.excludedLogins)
	if len(roster.AllMembers()) == 0 {
		log.Info("no contributors found", "pr", ref.String())
		return &props.Report{}, nil
	}

	if err := props.Reconcile(ctx, roster, s.profiles, s.directory); err != nil {
		return nil, err
	}

	report := props.Render(roster, s.directoryDomain)
	log.Info("attribution complete",
		"sections", len(report.Sections),
		"unresolved", len(report.Unresolved))

	return report, nil
}
