package ui

import (
	"fmt"
	"strings"

	"github.com/pulselog/internal/client"
)

// RenderActivityList renders the full activity sequence, newest first.
func RenderActivityList(activities []client.Activity) string {
	if len(activities) == 0 {
		return mutedStyle.Render("No activities logged yet.")
	}

	rows := make([]string, 0, len(activities)+1)
	rows = append(rows, titleStyle.Render("Activities"))

	for _, activity := range activities {
		notes := activity.Notes
		if notes == "" {
			notes = "No notes"
		}

		rows = append(rows, fmt.Sprintf("%s %s",
			titleStyle.Render(activity.Type),
			tagStyle.Render(fmt.Sprintf("%d mins · %s", activity.Duration, activity.Intensity)),
		))
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %s · %s", activity.Timestamp, notes)))
	}

	return strings.Join(rows, "\n")
}
