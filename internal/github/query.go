package github

import (
	"fmt"
	"strings"
)

const baseFilter = "is:open archived:false"

// SearchQuery builds the GitHub search string for one kind of work, scoped to
// the given organizations (all of GitHub when orgs is empty).
func SearchQuery(kind Kind, user string, orgs []string) string {
	parts := []string{baseFilter, roleClause(kind, user)}
	for _, org := range orgs {
		parts = append(parts, "user:"+org)
	}
	return strings.Join(parts, " ")
}

func roleClause(kind Kind, user string) string {
	switch kind {
	case KindPullRequests:
		return fmt.Sprintf("is:pr assignee:%s", user)
	case KindReviewRequests:
		return fmt.Sprintf("is:pr review-requested:%s", user)
	default:
		return fmt.Sprintf("is:issue assignee:%s", user)
	}
}
