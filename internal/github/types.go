package github

// Kind selects which of the user's work a search returns.
type Kind int

const (
	KindIssues Kind = iota
	KindPullRequests
	KindReviewRequests
)

// AllKinds lists every search the dashboard runs.
var AllKinds = []Kind{KindIssues, KindPullRequests, KindReviewRequests}

func (k Kind) String() string {
	switch k {
	case KindIssues:
		return "issues"
	case KindPullRequests:
		return "pull_requests"
	case KindReviewRequests:
		return "review_requests"
	default:
		return "unknown"
	}
}

// graphQLRequest is the POST body sent to the GraphQL endpoint.
type graphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}
