package router

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/mitchellh/mapstructure"
)

// Slots is the typed view of classifier parameters. The concrete type
// depends on the intent: *DraftSlots, *FlightSlots, *HotelSlots,
// *InfoSlots, or *OtherSlots for intents without a handler.
type Slots interface {
	// Unrecognized returns the parameters no typed field consumed,
	// including values that could not be converted to their field type.
	Unrecognized() map[string]any

	keep(key string, value any)
}

// DraftSlots are the parameters of start_draft and update_draft.
type DraftSlots struct {
	Destination string         `mapstructure:"destination"`
	Dates       any            `mapstructure:"dates"`
	Travelers   int            `mapstructure:"travelers"`
	Budget      any            `mapstructure:"budget"`
	Preferences any            `mapstructure:"preferences"`
	Activities  any            `mapstructure:"activities"`
	Extra       map[string]any `mapstructure:",remain"`
}

// FlightSlots are the parameters of search_flights.
type FlightSlots struct {
	Destination   string         `mapstructure:"destination"`
	DepartureCity string         `mapstructure:"departure_city"`
	DepartureDate string         `mapstructure:"departure_date"`
	ReturnDate    string         `mapstructure:"return_date"`
	Travelers     int            `mapstructure:"travelers"`
	Extra         map[string]any `mapstructure:",remain"`
}

// HotelSlots are the parameters of search_hotels.
type HotelSlots struct {
	Destination  string         `mapstructure:"destination"`
	CheckIn      string         `mapstructure:"check_in"`
	CheckOut     string         `mapstructure:"check_out"`
	Guests       int            `mapstructure:"guests"`
	Neighborhood string         `mapstructure:"neighborhood"`
	Amenities    []string       `mapstructure:"amenities"`
	Extra        map[string]any `mapstructure:",remain"`
}

// InfoSlots are the parameters of get_info.
type InfoSlots struct {
	Topic       string         `mapstructure:"topic"`
	Destination string         `mapstructure:"destination"`
	Extra       map[string]any `mapstructure:",remain"`
}

// OtherSlots holds the parameters of an intent no handler consumes.
type OtherSlots struct {
	Extra map[string]any
}

func (s *DraftSlots) Unrecognized() map[string]any  { return s.Extra }
func (s *FlightSlots) Unrecognized() map[string]any { return s.Extra }
func (s *HotelSlots) Unrecognized() map[string]any  { return s.Extra }
func (s *InfoSlots) Unrecognized() map[string]any   { return s.Extra }
func (s *OtherSlots) Unrecognized() map[string]any  { return s.Extra }

func (s *DraftSlots) keep(k string, v any)  { s.Extra = withExtra(s.Extra, k, v) }
func (s *FlightSlots) keep(k string, v any) { s.Extra = withExtra(s.Extra, k, v) }
func (s *HotelSlots) keep(k string, v any)  { s.Extra = withExtra(s.Extra, k, v) }
func (s *InfoSlots) keep(k string, v any)   { s.Extra = withExtra(s.Extra, k, v) }
func (s *OtherSlots) keep(k string, v any)  { s.Extra = withExtra(s.Extra, k, v) }

func withExtra(extra map[string]any, k string, v any) map[string]any {
	if extra == nil {
		extra = make(map[string]any)
	}
	extra[k] = v
	return extra
}

func newSlots(step Step) Slots {
	switch step {
	case StepDraft:
		return &DraftSlots{}
	case StepFlight:
		return &FlightSlots{}
	case StepHotel:
		return &HotelSlots{}
	case StepInfo:
		return &InfoSlots{}
	default:
		return nil
	}
}

// DecodeSlots decodes params into the Slots variant of intent. Decoding is
// weakly typed, so "2" fills an int and a lone string fills a list; counts
// also accept "2 adults" and "two". Each key is decoded on its own: a value
// that cannot be converted lands in Unrecognized and the other fields are
// still filled.
func DecodeSlots(intent Intent, params map[string]any) (Slots, error) {
	step := Next(intent)
	out := newSlots(step)
	if out == nil {
		other := &OtherSlots{Extra: make(map[string]any, len(params))}
		for k, v := range params {
			other.Extra[k] = v
		}
		return other, nil
	}

	good := make(map[string]any, len(params))
	rejected := make(map[string]any)
	for k, v := range params {
		if err := decodeInto(newSlots(step), map[string]any{k: v}); err != nil {
			rejected[k] = v
			continue
		}
		good[k] = v
	}

	if err := decodeInto(out, good); err != nil {
		return nil, fmt.Errorf("decode %s parameters: %w", intent, err)
	}
	for k, v := range rejected {
		out.keep(k, v)
	}
	return out, nil
}

func decodeInto(out Slots, params map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       lenientCount,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(params)
}

var countWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "couple": 2, "solo": 1,
}

// lenientCount reads the leading number of strings bound for int fields, so
// "2 adults", "two people" and "a couple" all give 2. Other strings are left
// to the weak decoder, which rejects them.
func lenientCount(from, to reflect.Kind, data any) (any, error) {
	if from != reflect.String || to != reflect.Int {
		return data, nil
	}
	text := strings.ToLower(strings.TrimSpace(data.(string)))
	digits := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsDigit(r) })
	switch {
	case digits == -1:
		return text, nil
	case digits > 0:
		return strconv.Atoi(text[:digits])
	}
	for _, word := range strings.Fields(text) {
		if n, ok := countWords[word]; ok {
			return n, nil
		}
		if word != "a" && word != "just" {
			break
		}
	}
	return data, nil
}
