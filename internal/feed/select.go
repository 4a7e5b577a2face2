package feed

import (
	"github.com/samber/lo"

	"github.com/odysseus0/onthisday/internal/model"
)

type Selection int

const (
	SelectRandom Selection = iota
	SelectOldest
	SelectNewest
)

// Pick chooses one event from the slice. SelectOldest and SelectNewest
// consider only events with a known year and break ties by first position;
// SelectRandom draws uniformly from the whole slice, year or not. ok is
// false when nothing qualifies.
func Pick(events []model.Event, sel Selection) (event model.Event, ok bool) {
	if len(events) == 0 {
		return model.Event{}, false
	}

	switch sel {
	case SelectOldest, SelectNewest:
		dated := lo.Filter(events, func(e model.Event, _ int) bool {
			return e.Year != nil
		})
		if len(dated) == 0 {
			return model.Event{}, false
		}
		if sel == SelectOldest {
			return lo.MinBy(dated, func(a, b model.Event) bool {
				return *a.Year < *b.Year
			}), true
		}
		return lo.MaxBy(dated, func(a, b model.Event) bool {
			return *a.Year > *b.Year
		}), true
	default:
		return lo.Sample(events), true
	}
}
