package feed

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/odysseus0/onthisday/internal/model"
)

// DecodeResponse parses a feed payload. Unknown fields are ignored; a body
// that is not the expected shape wraps ErrMalformedResponse.
func DecodeResponse(data []byte) (model.OnThisDayResponse, error) {
	var resp model.OnThisDayResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return model.OnThisDayResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return resp, nil
}

// FlattenEvents returns the bucket named by category. For CategoryAll the
// buckets concatenate as selected, births, deaths, holidays, events; order
// within each bucket is preserved.
func FlattenEvents(resp model.OnThisDayResponse, category model.Category) []model.Event {
	switch category {
	case model.CategorySelected:
		return resp.Selected
	case model.CategoryBirths:
		return resp.Births
	case model.CategoryDeaths:
		return resp.Deaths
	case model.CategoryHolidays:
		return resp.Holidays
	case model.CategoryEvents:
		return resp.Events
	default:
		return lo.Flatten([][]model.Event{resp.Selected, resp.Births, resp.Deaths, resp.Holidays, resp.Events})
	}
}
