package props

// Aggregate walks the contribution channels in fixed priority order and
// files each author under the highest-priority role they played. The
// skip policy (exclusion list + prior membership in any category) is
// applied before every insertion, so a login appears in at most one
// category after this pass.
//
// Commit authors without a linked platform account are keyed by their
// git email instead. They bypass the skip policy entirely — there is no
// login to check — so the same human can appear once under an email key
// and once under a login. That duplication is a known property of the
// data, not something this pass tries to repair.
func Aggregate(data Contributions, excludedLogins []string) *Roster {
	r := NewRoster(excludedLogins)

	for _, commit := range data.Commits {
		if commit.User == nil {
			key := commit.Email
			if key == "" || r.members[key] {
				continue
			}
			r.add(CategoryCommitters, key)
			r.setProfile(key, &Profile{Name: commit.Name, Email: commit.Email})
			continue
		}
		login := commit.User.Login
		if r.shouldSkip(login) {
			continue
		}
		r.add(CategoryCommitters, login)
		r.setProfile(login, &Profile{
			ID:    commit.User.ID,
			Login: commit.User.Login,
			Name:  commit.User.Name,
			Email: commit.User.Email,
		})
	}

	for _, review := range data.Reviews {
		if review.Login == "" || r.shouldSkip(review.Login) {
			continue
		}
		r.add(CategoryReviewers, review.Login)
	}

	for _, comment := range data.Comments {
		if comment.Login == "" || r.shouldSkip(comment.Login) {
			continue
		}
		r.add(CategoryCommenters, comment.Login)
	}

	for _, issue := range data.LinkedIssues {
		if login := issue.Author.Login; login != "" && !r.shouldSkip(login) {
			r.add(CategoryReporters, login)
		}
		for _, comment := range issue.Comments {
			if comment.Login == "" || r.shouldSkip(comment.Login) {
				continue
			}
			r.add(CategoryCommenters, comment.Login)
		}
	}

	return r
}
