package props

import (
	"fmt"
	"strings"
)

// Member is one credited contributor as it appears in the report.
// Trailer is empty when the contributor has no resolved directory
// handle; such members are listed in the report's Unresolved slice
// instead of contributing an attribution line.
type Member struct {
	Key     string   `json:"key"`
	Profile *Profile `json:"profile,omitempty"`
	Trailer string   `json:"trailer,omitempty"`
}

// Section is one non-empty category with its members in first-seen
// order.
type Section struct {
	Category Category `json:"category"`
	Members  []Member `json:"members"`
}

// Report is the final product of an attribution run.
type Report struct {
	Sections   []Section `json:"sections"`
	Text       string    `json:"text"`
	Unresolved []string  `json:"unresolved,omitempty"`
}

// Render produces the category-ordered attribution block. Categories
// with no members are omitted entirely. Each section is a header line
// (`# Committers`) followed by one attribution trailer per member with a
// resolved directory handle; members without one go on the unresolved
// list and emit no trailer line. Sections are joined by blank lines.
func Render(r *Roster, directoryDomain string) *Report {
	report := &Report{}
	var sections []string

	for _, cat := range CategoryOrder {
		keys := r.Members(cat)
		if len(keys) == 0 {
			continue
		}

		section := Section{Category: cat}
		lines := []string{"# " + cat.Display()}

		for _, key := range keys {
			member := Member{Key: key, Profile: r.Profile(key)}
			slug := ""
			if member.Profile != nil {
				slug = member.Profile.Slug
			}
			if slug == "" {
				report.Unresolved = append(report.Unresolved, key)
			} else {
				member.Trailer = Trailer(key, slug, directoryDomain)
				lines = append(lines, member.Trailer)
			}
			section.Members = append(section.Members, member)
		}

		report.Sections = append(report.Sections, section)
		sections = append(sections, strings.Join(lines, "\n"))
	}

	report.Text = strings.Join(sections, "\n\n")
	return report
}

// Trailer formats a single Co-authored-by attribution line.
func Trailer(login, slug, directoryDomain string) string {
	return fmt.Sprintf("Co-authored-by: %s <%s@%s>", login, slug, directoryDomain)
}

// TrailerLines returns just the attribution trailers across all
// sections, for direct embedding in a commit message.
func (rep *Report) TrailerLines() []string {
	var lines []string
	for _, section := range rep.Sections {
		for _, m := range section.Members {
			if m.Trailer != "" {
				lines = append(lines, m.Trailer)
			}
		}
	}
	return lines
}

// Empty reports whether the run credited no contributors at all.
func (rep *Report) Empty() bool {
	return len(rep.Sections) == 0
}
