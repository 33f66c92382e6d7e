package props

import (
	"reflect"
	"strings"
	"testing"
)

const testDomain = "git.example.org"

func rosterWith(t *testing.T, data Contributions, slugs map[string]string) *Roster {
	t.Helper()
	r := Aggregate(data, nil)
	for key, slug := range slugs {
		p := r.Profile(key)
		if p == nil {
			p = &Profile{Login: key}
			r.setProfile(key, p)
		}
		p.Slug = slug
	}
	// Members without an entry in slugs stay unresolved but still need
	// a profile record, as Reconcile guarantees.
	for _, key := range r.AllMembers() {
		if r.Profile(key) == nil {
			r.setProfile(key, &Profile{Login: key})
		}
	}
	return r
}

func TestRenderCategoryOrderAndHeaders(t *testing.T) {
	data := Contributions{
		Commits: []CommitAuthor{linkedCommit("alice")},
		Reviews: []Actor{{Login: "bob"}},
		LinkedIssues: []LinkedIssue{
			{Author: Actor{Login: "carol"}},
		},
	}
	r := rosterWith(t, data, map[string]string{
		"alice": "alice-dir",
		"bob":   "bobby",
		"carol": "carol-dir",
	})

	report := Render(r, testDomain)

	want := strings.Join([]string{
		"# Committers",
		"Co-authored-by: alice <alice-dir@git.example.org>",
		"",
		"# Reviewers",
		"Co-authored-by: bob <bobby@git.example.org>",
		"",
		"# Reporters",
		"Co-authored-by: carol <carol-dir@git.example.org>",
	}, "\n")
	if report.Text != want {
		t.Errorf("Render text:\n%s\nwant:\n%s", report.Text, want)
	}

	// No commenters anywhere: the section must be absent, not empty.
	if strings.Contains(report.Text, "Commenters") {
		t.Error("empty category should not emit a header")
	}
}

func TestRenderZeroContributors(t *testing.T) {
	r := Aggregate(Contributions{}, nil)
	report := Render(r, testDomain)

	if report.Text != "" {
		t.Errorf("expected empty text, got %q", report.Text)
	}
	if !report.Empty() {
		t.Error("expected Empty() for zero contributors")
	}
}

func TestRenderUnresolvedRoundTrip(t *testing.T) {
	// Directory says alice is linked and bob is not: alice gets a
	// trailer line, bob lands on the unresolved list with none.
	data := Contributions{
		Commits: []CommitAuthor{linkedCommit("alice")},
		Reviews: []Actor{{Login: "bob"}},
	}
	r := rosterWith(t, data, map[string]string{"alice": "alice-wp"})

	report := Render(r, testDomain)

	if !strings.Contains(report.Text, "Co-authored-by: alice <alice-wp@git.example.org>") {
		t.Errorf("missing alice trailer in:\n%s", report.Text)
	}
	if strings.Contains(report.Text, "Co-authored-by: bob") {
		t.Errorf("bob must not get a trailer line:\n%s", report.Text)
	}
	if want := []string{"bob"}; !reflect.DeepEqual(report.Unresolved, want) {
		t.Errorf("Unresolved = %v, want %v", report.Unresolved, want)
	}
	// The header is still emitted: reviewers has a member, just an
	// unresolved one.
	if !strings.Contains(report.Text, "# Reviewers") {
		t.Errorf("expected Reviewers header in:\n%s", report.Text)
	}
}

func TestRenderEndToEndScenario(t *testing.T) {
	// One commit by alice, one review by bob, one comment by alice (who
	// is already a committer): alice appears once under Committers and
	// no Commenters section exists.
	data := Contributions{
		Commits:  []CommitAuthor{linkedCommit("alice")},
		Reviews:  []Actor{{Login: "bob"}},
		Comments: []Actor{{Login: "alice"}},
	}
	r := rosterWith(t, data, map[string]string{
		"alice": "wonderland",
		"bob":   "builder",
	})

	report := Render(r, testDomain)

	if got := strings.Count(report.Text, "alice"); got != 1 {
		t.Errorf("alice appears %d times, want 1:\n%s", got, report.Text)
	}
	if strings.Contains(report.Text, "# Commenters") {
		t.Errorf("unexpected Commenters section:\n%s", report.Text)
	}
	if !strings.Contains(report.Text, "# Committers") {
		t.Errorf("expected Committers section:\n%s", report.Text)
	}
	if !strings.Contains(report.Text, "# Reviewers") {
		t.Errorf("expected Reviewers section:\n%s", report.Text)
	}
}

func TestTrailerLines(t *testing.T) {
	data := Contributions{
		Commits: []CommitAuthor{linkedCommit("alice")},
		Reviews: []Actor{{Login: "bob"}},
	}
	r := rosterWith(t, data, map[string]string{"alice": "alice-dir"})

	report := Render(r, testDomain)
	lines := report.TrailerLines()

	want := []string{"Co-authored-by: alice <alice-dir@git.example.org>"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("TrailerLines() = %v, want %v", lines, want)
	}
}

func TestCategoryDisplay(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryCommitters, "Committers"},
		{CategoryReviewers, "Reviewers"},
		{CategoryCommenters, "Commenters"},
		{CategoryReporters, "Reporters"},
	}
	for _, tt := range tests {
		if got := tt.cat.Display(); got != tt.want {
			t.Errorf("Display(%s) = %q, want %q", tt.cat, got, tt.want)
		}
	}
}
