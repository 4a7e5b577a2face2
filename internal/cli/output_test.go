package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/odysseus0/onthisday/internal/model"
)

func TestWriteEventTextLayout(t *testing.T) {
	y := 1969
	var buf bytes.Buffer
	if err := writeEvent(&buf, model.OutputText, 7, 20, model.Event{Text: "moon landing", Year: &y}); err != nil {
		t.Fatalf("writeEvent: %v", err)
	}
	got := buf.String()

	if !strings.Contains(got, "--- On This Day: 07/20 ---") {
		t.Fatalf("missing header: %q", got)
	}
	if !strings.Contains(got, "Year 1969: moon landing") {
		t.Fatalf("missing event line: %q", got)
	}
	// Header and event sit on their own lines below a blank line each.
	if !strings.HasPrefix(got, "\n") {
		t.Fatalf("expected leading blank line: %q", got)
	}
}

func TestWriteEventYearlessOmitsYear(t *testing.T) {
	var buf bytes.Buffer
	if err := writeEvent(&buf, model.OutputText, 1, 1, model.Event{Text: "new year"}); err != nil {
		t.Fatalf("writeEvent: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "new year") {
		t.Fatalf("missing event text: %q", got)
	}
	if strings.Contains(got, "Year ") {
		t.Fatalf("year-less event must not print a year: %q", got)
	}
}

func TestWriteEventJSONDocument(t *testing.T) {
	y := 1066
	var buf bytes.Buffer
	if err := writeEvent(&buf, model.OutputJSON, 10, 14, model.Event{Text: "battle", Year: &y}); err != nil {
		t.Fatalf("writeEvent: %v", err)
	}

	var doc eventDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v\n%q", err, buf.String())
	}
	if doc.Month != 10 || doc.Day != 14 {
		t.Fatalf("date = %02d/%02d, want 10/14", doc.Month, doc.Day)
	}
	if doc.Event == nil || doc.Event.Text != "battle" || doc.Event.Year == nil || *doc.Event.Year != 1066 {
		t.Fatalf("unexpected event: %+v", doc.Event)
	}
}

func TestWriteNoEvents(t *testing.T) {
	var buf bytes.Buffer
	if err := writeNoEvents(&buf, model.OutputText, 2, 3); err != nil {
		t.Fatalf("writeNoEvents: %v", err)
	}
	if !strings.Contains(buf.String(), "No historical events found for today with the selected type.") {
		t.Fatalf("missing notice: %q", buf.String())
	}

	buf.Reset()
	if err := writeNoEvents(&buf, model.OutputJSON, 2, 3); err != nil {
		t.Fatalf("writeNoEvents json: %v", err)
	}
	if !strings.Contains(buf.String(), `"event": null`) {
		t.Fatalf("expected null event: %q", buf.String())
	}
}

func TestFormatEventLine(t *testing.T) {
	y := 1900
	if got := formatEventLine(model.Event{Text: "thing", Year: &y}); got != "Year 1900: thing" {
		t.Fatalf("formatEventLine = %q", got)
	}
	if got := formatEventLine(model.Event{Text: "festival"}); got != "festival" {
		t.Fatalf("formatEventLine = %q", got)
	}
}
