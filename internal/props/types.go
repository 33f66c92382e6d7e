// Package props aggregates pull-request contributors, resolves their
// directory identities, and renders attribution output.
package props

// Category is the single role under which a contributor is credited.
type Category string

const (
	CategoryCommitters Category = "committers"
	CategoryReviewers  Category = "reviewers"
	CategoryCommenters Category = "commenters"
	CategoryReporters  Category = "reporters"
)

// CategoryOrder is the fixed priority order. It drives both aggregation
// (a login already credited in an earlier category is never credited
// again) and the order of rendered sections.
var CategoryOrder = []Category{
	CategoryCommitters,
	CategoryReviewers,
	CategoryCommenters,
	CategoryReporters,
}

// Display returns the category name with its first letter capitalized,
// as used in section headers.
func (c Category) Display() string {
	s := string(c)
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// Actor is a reference to a platform account attached to one
// contribution event.
type Actor struct {
	Login string
}

// UserProfile is the full profile data for a linked platform account.
type UserProfile struct {
	ID    int64
	Login string
	Name  string
	Email string
}

// CommitAuthor is the author payload of one commit. User is nil when the
// commit is not linked to a platform account; in that case the bare
// name/email pair recorded in git is all we have.
type CommitAuthor struct {
	Name  string
	Email string
	User  *UserProfile
}

// LinkedIssue is an issue closed by the pull request, with its author
// and the authors of its own comments.
type LinkedIssue struct {
	Author   Actor
	Comments []Actor
}

// Contributions holds the raw per-channel author data for one pull
// request, in the order the channels are processed.
type Contributions struct {
	Commits      []CommitAuthor
	Reviews      []Actor
	Comments     []Actor
	LinkedIssues []LinkedIssue
}

// Profile is the enriched identity record for one contributor key.
// Slug is the directory handle, attached during reconciliation; it stays
// empty for contributors with no linked directory account.
type Profile struct {
	ID    int64  `json:"id,omitempty"`
	Login string `json:"login,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Slug  string `json:"slug,omitempty"`
}

// Roster owns all mutable state for a single attribution run: the
// ordered per-category member lists and the profile side-table. It is
// created by Aggregate, enriched by Reconcile, and read by Render.
// Nothing survives between runs.
type Roster struct {
	categories map[Category][]string
	members    map[string]bool
	profiles   map[string]*Profile
	excluded   map[string]bool
}

// NewRoster returns an empty roster with the given exclusion list
// (automation accounts that must never be credited).
func NewRoster(excludedLogins []string) *Roster {
	excluded := make(map[string]bool, len(excludedLogins))
	for _, login := range excludedLogins {
		excluded[login] = true
	}
	return &Roster{
		categories: make(map[Category][]string),
		members:    make(map[string]bool),
		profiles:   make(map[string]*Profile),
		excluded:   excluded,
	}
}

// shouldSkip reports whether a login must not be recorded: it is either
// on the exclusion list or already credited in some category. This is
// the single enforcement point for the one-category invariant and is
// always evaluated before insertion.
func (r *Roster) shouldSkip(login string) bool {
	return r.excluded[login] || r.members[login]
}

// add appends key to the category's member list. Callers must have
// applied shouldSkip first (or be recording an email-fallback identity,
// which has no login to check).
func (r *Roster) add(cat Category, key string) {
	r.members[key] = true
	r.categories[cat] = append(r.categories[cat], key)
}

// Members returns the category's member keys in first-seen order.
func (r *Roster) Members(cat Category) []string {
	return r.categories[cat]
}

// AllMembers returns every contributor key across all categories,
// flattened in category priority order.
func (r *Roster) AllMembers() []string {
	var all []string
	for _, cat := range CategoryOrder {
		all = append(all, r.categories[cat]...)
	}
	return all
}

// Profile returns the profile for a contributor key, or nil if none has
// been recorded yet.
func (r *Roster) Profile(key string) *Profile {
	return r.profiles[key]
}

// setProfile records or replaces the profile for a contributor key.
func (r *Roster) setProfile(key string, p *Profile) {
	r.profiles[key] = p
}
