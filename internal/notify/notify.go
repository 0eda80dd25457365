package notify

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"
)

const title = "GitHub items need attention"

// Sender delivers a desktop notification.
type Sender func(title, body string) error

func Desktop(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Hot sends one notification summarizing the hot item titles. Nothing is sent
// when there are none.
func Hot(send Sender, titles []string) error {
	if len(titles) == 0 {
		return nil
	}
	if err := send(title, Body(titles)); err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	return nil
}

// Body lists up to three titles; longer lists collapse to a count.
func Body(titles []string) string {
	summary := fmt.Sprintf("%d updated in the last day", len(titles))
	if len(titles) > 3 {
		return summary
	}

	lines := make([]string, 0, len(titles))
	for _, t := range titles {
		lines = append(lines, "• "+t)
	}
	return summary + "\n" + strings.Join(lines, "\n")
}
