package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/odysseus0/onthisday/internal/model"
	"github.com/odysseus0/onthisday/internal/ui"
)

// eventDocument is the machine-readable result. Event is null when nothing
// was found or selectable.
type eventDocument struct {
	Month int          `json:"month"`
	Day   int          `json:"day"`
	Event *model.Event `json:"event"`
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeEvent(out io.Writer, format model.OutputFormat, month, day int, event model.Event) error {
	if format == model.OutputJSON {
		return writeJSON(out, eventDocument{Month: month, Day: day, Event: &event})
	}
	header := fmt.Sprintf("--- On This Day: %02d/%02d ---", month, day)
	fmt.Fprintf(out, "\n%s\n", ui.HeaderStyle.Render(header))
	fmt.Fprintf(out, "\n%s\n", ui.EventStyle.Render(formatEventLine(event)))
	return nil
}

func formatEventLine(event model.Event) string {
	if event.Year != nil {
		return fmt.Sprintf("Year %d: %s", *event.Year, event.Text)
	}
	// Year-less events, like holidays, print bare.
	return event.Text
}

func writeNoEvents(out io.Writer, format model.OutputFormat, month, day int) error {
	if format == model.OutputJSON {
		return writeJSON(out, eventDocument{Month: month, Day: day})
	}
	fmt.Fprintln(out, ui.NoticeStyle.Render("No historical events found for today with the selected type."))
	return nil
}
