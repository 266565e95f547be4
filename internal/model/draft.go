package model

import "time"

// DraftPackage is the trip plan accumulated across turns.
type DraftPackage struct {
	Destination  string         `json:"destination"`
	Dates        any            `json:"dates,omitempty"`
	Travelers    int            `json:"travelers"`
	Budget       any            `json:"budget,omitempty"`
	Preferences  map[string]any `json:"preferences"`
	Activities   []any          `json:"activities"`
	CreatedAt    time.Time      `json:"created_at,omitzero"`
	LastModified time.Time      `json:"last_modified,omitzero"`
}

// NewDraftPackage returns an empty draft with its own maps and slices.
func NewDraftPackage() DraftPackage {
	return DraftPackage{
		Preferences: make(map[string]any),
		Activities:  make([]any, 0),
	}
}

// IsEmpty reports whether no field of the draft holds a meaningful value.
func (d DraftPackage) IsEmpty() bool {
	return d.Destination == "" &&
		!Truthy(d.Dates) &&
		d.Travelers == 0 &&
		!Truthy(d.Budget) &&
		len(d.Preferences) == 0 &&
		len(d.Activities) == 0 &&
		d.CreatedAt.IsZero() &&
		d.LastModified.IsZero()
}

// Truthy reports whether v is a present, non-zero value: non-empty strings,
// maps and slices, non-zero numbers and true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	default:
		return true
	}
}

// Clone returns a copy whose preferences and activities can be modified
// without touching d. Values nested inside them are shared.
func (d DraftPackage) Clone() DraftPackage {
	out := d
	out.Preferences = make(map[string]any, len(d.Preferences))
	for k, v := range d.Preferences {
		out.Preferences[k] = v
	}
	out.Activities = append(make([]any, 0, len(d.Activities)), d.Activities...)
	return out
}
