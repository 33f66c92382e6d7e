package props

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ProfileSource returns full profile data for a set of logins in one
// batched request.
type ProfileSource interface {
	BatchProfiles(ctx context.Context, logins []string) (map[string]UserProfile, error)
}

// DirectorySource resolves platform logins to directory handles. The
// returned map contains an entry only for logins with a linked directory
// account; unlinked logins are simply absent.
type DirectorySource interface {
	Lookup(ctx context.Context, logins []string) (map[string]string, error)
}

// Reconcile enriches the roster's profile table. Reviewers, commenters,
// and reporters enter the roster as bare logins, so their profiles are
// backfilled with one batched profile request (skipped when there is
// nothing to backfill). Independently, the complete flattened member
// list — email-fallback keys included, though they never match — is sent
// to the directory for handle resolution. The two calls run concurrently;
// both must succeed. Any failure fails the whole run.
func Reconcile(ctx context.Context, r *Roster, profiles ProfileSource, directory DirectorySource) error {
	var missing []string
	for _, cat := range []Category{CategoryReviewers, CategoryCommenters, CategoryReporters} {
		for _, login := range r.Members(cat) {
			if r.Profile(login) == nil {
				missing = append(missing, login)
			}
		}
	}

	all := r.AllMembers()
	if len(all) == 0 {
		return nil
	}

	var (
		backfilled map[string]UserProfile
		handles    map[string]string
	)

	g, gctx := errgroup.WithContext(ctx)
	if len(missing) > 0 {
		g.Go(func() error {
			var err error
			backfilled, err = profiles.BatchProfiles(gctx, missing)
			if err != nil {
				return fmt.Errorf("profile backfill failed: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		var err error
		handles, err = directory.Lookup(gctx, all)
		if err != nil {
			return fmt.Errorf("directory lookup failed: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for login, user := range backfilled {
		r.setProfile(login, &Profile{
			ID:    user.ID,
			Login: user.Login,
			Name:  user.Name,
			Email: user.Email,
		})
	}

	for _, key := range all {
		p := r.Profile(key)
		if p == nil {
			// Profile request returned nothing for this login
			// (deleted account, ghost). Keep a stub so rendering
			// still has a record to consult.
			p = &Profile{Login: key}
			r.setProfile(key, p)
		}
		if slug, ok := handles[key]; ok && slug != "" {
			p.Slug = slug
		}
	}

	return nil
}
