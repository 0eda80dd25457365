package github

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cli/go-gh/v2/pkg/api"
)

const (
	defaultHost   = "github.com"
	operationName = "UserIssues"
)

//go:embed search.graphql
var searchDocument string

type Client struct {
	http     *http.Client
	endpoint string
	logger   *log.Logger
}

// NewClient builds a client for host authenticated with token. An empty host
// means github.com.
func NewClient(host, token string, timeout time.Duration, logger *log.Logger) (*Client, error) {
	if host == "" {
		host = defaultHost
	}

	httpClient, err := api.NewHTTPClient(api.ClientOptions{
		Host:      host,
		AuthToken: token,
		Timeout:   timeout,
		Headers: map[string]string{
			"Authorization": "bearer " + token,
		},
		LogIgnoreEnv: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating GitHub HTTP client: %w", err)
	}

	return NewClientWithHTTP(httpClient, GraphQLEndpoint(host), logger), nil
}

// NewClientWithHTTP wires an existing HTTP client to a GraphQL endpoint.
func NewClientWithHTTP(httpClient *http.Client, endpoint string, logger *log.Logger) *Client {
	return &Client{
		http:     httpClient,
		endpoint: endpoint,
		logger:   logger,
	}
}

func GraphQLEndpoint(host string) string {
	if host == "" || host == defaultHost {
		return "https://api.github.com/graphql"
	}
	return fmt.Sprintf("https://%s/api/graphql", host)
}

// Search runs the search document for searchQuery and returns the raw
// response body. The body is returned even for non-2xx statuses: error
// documents simply carry no search results.
func (c *Client) Search(ctx context.Context, searchQuery string) ([]byte, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query:         searchDocument,
		Variables:     map[string]any{"searchQuery": searchQuery},
		OperationName: operationName,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("unexpected GraphQL response status", "status", resp.StatusCode, "query", searchQuery)
	}

	return body, nil
}
