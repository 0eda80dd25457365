package issue

import (
	"encoding/json"
	"fmt"
	"time"
)

const secondsPerDay = 86_400

// WorkItem is immutable once parsed. Identity is the ID.
type WorkItem struct {
	id         string
	url        string
	title      string
	repository string
	comments   int64
	reactions  int64
	state      State
	updatedAt  time.Time
}

func (w WorkItem) ID() string { return w.id }
func (w WorkItem) URL() string { return w.url }
func (w WorkItem) Title() string { return w.title }
func (w WorkItem) Repository() string { return w.repository }
func (w WorkItem) Comments() int64 { return w.comments }
func (w WorkItem) Reactions() int64 { return w.reactions }
func (w WorkItem) State() State { return w.state }
func (w WorkItem) UpdatedAt() time.Time { return w.updatedAt }

func (w WorkItem) IsOpen() bool {
	return w.state.IsOpen()
}

func (w WorkItem) Equal(other WorkItem) bool {
	return w.id == other.id
}

func (w WorkItem) AgeDays(now time.Time) int64 {
	seconds := int64(now.Sub(w.updatedAt) / time.Second)
	return seconds / secondsPerDay
}

// Engagement is clamped to 1 before squaring.
func (w WorkItem) Score(now time.Time) int64 {
	engagement := min(w.comments+w.reactions, 1)
	return engagement*engagement - w.AgeDays(now)
}

func (w WorkItem) IsHot(now time.Time) bool {
	return w.AgeDays(now) == 0
}

func (w WorkItem) Format(now time.Time) string {
	return w.Marker(now) + w.Line()
}

func (w WorkItem) Marker(now time.Time) string {
	if w.IsHot(now) {
		return "*"
	}
	return " "
}

func (w WorkItem) Line() string {
	return fmt.Sprintf("%s -> %s\t[%s]", w.repository, w.title, w.url)
}

func (w WorkItem) String() string {
	return w.Format(time.Now())
}

// ParseNode reports ok == false for a node missing a required field. A present
// but malformed state or timestamp is an error.
func ParseNode(node map[string]any) (item WorkItem, ok bool, err error) {
	item.comments = totalCount(node, "comments")
	item.reactions = totalCount(node, "reactions")

	rawUpdatedAt, ok := stringField(node, "updatedAt")
	if !ok {
		return WorkItem{}, false, nil
	}
	if item.id, ok = stringField(node, "id"); !ok {
		return WorkItem{}, false, nil
	}
	if item.url, ok = stringField(node, "url"); !ok {
		return WorkItem{}, false, nil
	}
	if item.title, ok = stringField(node, "title"); !ok {
		return WorkItem{}, false, nil
	}

	rawState, ok := stringField(node, "state")
	if !ok {
		return WorkItem{}, false, nil
	}
	if item.state, err = ParseState(rawState); err != nil {
		return WorkItem{}, false, fmt.Errorf("node %s: %w", item.id, err)
	}

	if item.updatedAt, err = time.Parse(time.RFC3339, rawUpdatedAt); err != nil {
		return WorkItem{}, false, fmt.Errorf("node %s: %w: %q", item.id, ErrInvalidTimestamp, rawUpdatedAt)
	}

	repo, _ := node["repository"].(map[string]any)
	if item.repository, ok = stringField(repo, "nameWithOwner"); !ok {
		return WorkItem{}, false, nil
	}

	return item, true, nil
}

func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	return s, ok
}

func totalCount(obj map[string]any, key string) int64 {
	inner, _ := obj[key].(map[string]any)
	switch v := inner["totalCount"].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil || n < 0 {
			return 0
		}
		return n
	case float64:
		if v < 0 || v != float64(int64(v)) {
			return 0
		}
		return int64(v)
	case int:
		return int64(max(v, 0))
	case int64:
		return max(v, 0)
	default:
		return 0
	}
}
