// Package api - Request normalization
// Callers send inventories in several shapes; everything is normalized to a
// label-to-quantity map before the engine sees it. Normalization is
// shape-mapping only, it never resolves or prices anything.
package api

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"moving-cost/internal/errors"
)

// itemObject is one entry in the array-of-objects item shape
type itemObject struct {
	Name     string `json:"name"`
	Item     string `json:"item"`
	Label    string `json:"label"`
	Qty      *int   `json:"qty"`
	Quantity *int   `json:"quantity"`
	Count    *int   `json:"count"`
}

func (o *itemObject) label() string {
	for _, candidate := range []string{o.Name, o.Item, o.Label} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func (o *itemObject) quantity() int {
	for _, candidate := range []*int{o.Qty, o.Quantity, o.Count} {
		if candidate != nil {
			return *candidate
		}
	}
	return 1
}

// normalizeItems converts any accepted item shape to a label-quantity map.
// Repeated labels accumulate.
func normalizeItems(raw json.RawMessage) (map[string]int, error) {
	if len(raw) == 0 {
		return nil, errors.Input("items is required")
	}

	var asMap map[string]int
	if err := json.Unmarshal(raw, &asMap); err == nil {
		return asMap, nil
	}

	var asObjects []itemObject
	if err := json.Unmarshal(raw, &asObjects); err == nil {
		items := make(map[string]int, len(asObjects))
		for _, obj := range asObjects {
			label := obj.label()
			if label == "" {
				return nil, errors.Input("item entry has no name")
			}
			items[label] += obj.quantity()
		}
		return items, nil
	}

	var asLabels []string
	if err := json.Unmarshal(raw, &asLabels); err == nil {
		items := make(map[string]int, len(asLabels))
		for _, label := range asLabels {
			if strings.TrimSpace(label) == "" {
				return nil, errors.Input("item entry has no name")
			}
			items[label]++
		}
		return items, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return ParseItemList(asString)
	}

	return nil, errors.Input("items must be an object, an array, or a string")
}

// ParseItemList parses "sofa: 2, dining chair: 6" style inventories.
// Entries without an explicit quantity default to one.
func ParseItemList(list string) (map[string]int, error) {
	items := make(map[string]int)
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		label := part
		qty := 1
		if idx := strings.LastIndex(part, ":"); idx >= 0 {
			parsed, err := strconv.Atoi(strings.TrimSpace(part[idx+1:]))
			if err != nil {
				return nil, errors.Input("invalid quantity in item list: " + part)
			}
			label = strings.TrimSpace(part[:idx])
			qty = parsed
		}
		if label == "" {
			return nil, errors.Input("item entry has no name")
		}
		items[label] += qty
	}
	if len(items) == 0 {
		return nil, errors.Input("items is required")
	}
	return items, nil
}

// ParseDate parses the move date, tolerating slash separators
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.InvalidDate(raw, nil)
	}
	coerced := strings.ReplaceAll(raw, "/", "-")
	date, err := time.Parse("2006-01-02", coerced)
	if err != nil {
		return time.Time{}, errors.InvalidDate(raw, err)
	}
	return date, nil
}

// accessConditions derives throughput-rule tags from the location details.
// The worst condition at either end governs, so tags from both ends are
// collected and deduplicated in a fixed order.
func accessConditions(locations ...*Location) []string {
	seen := make(map[string]bool)
	for _, loc := range locations {
		if loc == nil {
			continue
		}
		if loc.Access != "" {
			seen[strings.ToLower(strings.TrimSpace(loc.Access))] = true
		}
		if loc.Floor > 1 {
			if loc.HasElevator {
				seen["elevator"] = true
			} else {
				seen["stairs"] = true
			}
		}
	}

	var conditions []string
	for _, tag := range []string{"stairs", "elevator", "storage", "dock"} {
		if seen[tag] {
			conditions = append(conditions, tag)
			delete(seen, tag)
		}
	}
	extra := make([]string, 0, len(seen))
	for tag := range seen {
		extra = append(extra, tag)
	}
	sort.Strings(extra)
	return append(conditions, extra...)
}
