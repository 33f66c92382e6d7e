package github

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/propsbot/propsbot/internal/constants"
	"github.com/propsbot/propsbot/internal/props"
)

//go:embed queries/*.graphql
var queryFiles embed.FS

// Query templates parsed at init time
var (
	contributionsTemplate *template.Template
	profileItemTemplate   *template.Template
)

func init() {
	data, err := queryFiles.ReadFile("queries/contributions.graphql")
	if err != nil {
		panic(fmt.Sprintf("failed to load contributions.graphql: %v", err))
	}
	contributionsTemplate = template.Must(template.New("contributions").Parse(string(data)))

	itemData, err := queryFiles.ReadFile("queries/profile_item.graphql")
	if err != nil {
		panic(fmt.Sprintf("failed to load profile_item.graphql: %v", err))
	}
	profileItemTemplate = template.Must(template.New("profile_item").Parse(string(itemData)))
}

// contributionsParams parameterizes the pull-request contributions query.
type contributionsParams struct {
	Owner  string
	Repo   string
	Number int
	Limit  int
}

// BuildContributionsQuery builds the single GraphQL query that returns
// all four contribution channels for a pull request.
func BuildContributionsQuery(owner, repo string, number int) (string, error) {
	params := contributionsParams{
		Owner:  owner,
		Repo:   repo,
		Number: number,
		Limit:  constants.ChannelNodeLimit,
	}

	var buf bytes.Buffer
	if err := contributionsTemplate.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("failed to execute contributions template: %w", err)
	}
	return buf.String(), nil
}

// profileItem is one aliased sub-query in a profile batch request.
type profileItem struct {
	Alias string
	Login string
}

// BuildProfileBatchQuery builds one GraphQL query aliasing each login
// (via the sanitizer) to a user sub-query. The returned map recovers the
// login for each alias when parsing the response.
func BuildProfileBatchQuery(logins []string) (string, map[string]string, error) {
	aliases := make(map[string]string, len(logins))

	var sb strings.Builder
	sb.WriteString("query {\n")
	for _, login := range logins {
		alias := props.SanitizeAlias(login)
		aliases[alias] = login

		var buf bytes.Buffer
		if err := profileItemTemplate.Execute(&buf, profileItem{Alias: alias, Login: login}); err != nil {
			return "", nil, fmt.Errorf("failed to execute profile template for %s: %w", alias, err)
		}
		sb.WriteString("  ")
		sb.WriteString(strings.ReplaceAll(strings.TrimRight(buf.String(), "\n"), "\n", "\n  "))
		sb.WriteString("\n")
	}
	sb.WriteString("}")

	return sb.String(), aliases, nil
}
