package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdash/internal/dashboard"
	"gdash/internal/issue"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func testResult(t *testing.T) *dashboard.Result {
	t.Helper()
	body := []byte(`{"data":{"search":{"edges":[
		{"node":{"id":"a","url":"https://github.com/acme/api/issues/1","title":"Old bug","state":"OPEN",
			"updatedAt":"2024-03-05T12:00:00Z","repository":{"nameWithOwner":"acme/api"}}},
		{"node":{"id":"b","url":"https://github.com/acme/web/pull/2","title":"Add login","state":"OPEN",
			"updatedAt":"2024-03-15T11:00:00Z","comments":{"totalCount":2},"repository":{"nameWithOwner":"acme/web"}}}
	]}}}`)
	items, err := issue.ExtractJSON(body, testNow)
	require.NoError(t, err)
	return &dashboard.Result{Items: items, Now: testNow}
}

func TestPrintItems(t *testing.T) {
	var buf bytes.Buffer
	printItems(&buf, testResult(t), false)

	assert.Equal(t,
		"*acme/web -> Add login\t[https://github.com/acme/web/pull/2]\n"+
			" acme/api -> Old bug\t[https://github.com/acme/api/issues/1]\n",
		buf.String())
}

func TestPrintItems_ColorKeepsText(t *testing.T) {
	var buf bytes.Buffer
	printItems(&buf, testResult(t), true)

	assert.Contains(t, buf.String(), "acme/web -> Add login\t[https://github.com/acme/web/pull/2]\n")
	assert.Contains(t, buf.String(), " acme/api -> Old bug\t[https://github.com/acme/api/issues/1]\n")
}

func TestHotTitles(t *testing.T) {
	assert.Equal(t, []string{"Add login"}, hotTitles(testResult(t)))
}

func TestPrintQueries(t *testing.T) {
	var buf bytes.Buffer
	printQueries(&buf, "octocat", []string{"acme"})

	assert.Equal(t,
		"issues\tis:open archived:false is:issue assignee:octocat user:acme\n"+
			"pull_requests\tis:open archived:false is:pr assignee:octocat user:acme\n"+
			"review_requests\tis:open archived:false is:pr review-requested:octocat user:acme\n",
		buf.String())
}
