package report

import (
	"fmt"
	"io"
	"strings"

	"practicum-assigner/internal/stats"
)

// WriteText prints the summary in the console layout.
func WriteText(w io.Writer, s stats.Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of participants: %d\n\n", s.Participants)

	for _, a := range s.Activities {
		fmt.Fprintf(&b, "activity: %d (%s), capacity: %d, assigned: %d, left over: %d\n",
			a.ID, a.Name, a.Capacity, a.Assigned, a.LeftOver)
	}
	b.WriteString("\n")

	for k, n := range s.PositionCounts {
		fmt.Fprintf(&b, "Preference %d: %d\n", k+1, n)
	}
	fmt.Fprintf(&b, "Random: %d\n\n", s.Fallback)
	fmt.Fprintf(&b, "Total Score: %d\n", s.Score)

	_, err := io.WriteString(w, b.String())

	return err
}
