package issue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ExtractJSON decodes a raw GraphQL response body and extracts its work items.
func ExtractJSON(body []byte, now time.Time) ([]WorkItem, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var envelope any
	if err := dec.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return Extract(envelope, now)
}

// Extract walks data.search.edges[].node of a decoded response, keeping open
// items sorted by score. A missing or oddly shaped envelope yields no items;
// a malformed node fails the whole batch.
func Extract(envelope any, now time.Time) ([]WorkItem, error) {
	var items []WorkItem
	for i, edge := range searchEdges(envelope) {
		edgeObj, ok := edge.(map[string]any)
		if !ok {
			continue
		}
		node, ok := edgeObj["node"].(map[string]any)
		if !ok {
			continue
		}

		item, ok, err := ParseNode(node)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if !ok || !item.IsOpen() {
			continue
		}
		items = append(items, item)
	}

	Sort(items, now)
	return items, nil
}

func searchEdges(envelope any) []any {
	root, _ := envelope.(map[string]any)
	data, _ := root["data"].(map[string]any)
	search, _ := data["search"].(map[string]any)
	edges, _ := search["edges"].([]any)
	return edges
}
