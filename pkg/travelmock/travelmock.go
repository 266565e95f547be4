package travelmock

import (
	"embed"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

const destinationPlaceholder = "{destination}"

// Provider serves deterministic flight, hotel and destination data from
// embedded tables. It is safe for concurrent use; nothing is mutated after New.
type Provider struct {
	catalog catalog
	info    infoTables
}

// New loads the embedded tables.
func New() (*Provider, error) {
	p := &Provider{}
	if err := decode("data/catalog.yaml", &p.catalog); err != nil {
		return nil, err
	}
	if err := decode("data/info.yaml", &p.info); err != nil {
		return nil, err
	}
	return p, nil
}

func decode(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("travelmock: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("travelmock: parse %s: %w", name, err)
	}
	return nil
}

// SearchFlights returns the fixed schedule priced for q.Destination.
// Passengers below 1 count as 1; an empty DepartureCity means New York.
func (p *Provider) SearchFlights(q FlightQuery) []Flight {
	cfg := p.catalog.Flights
	base := lookupPrice(cfg.BasePrices, q.Destination, cfg.DefaultBasePrice)
	passengers := max(q.Passengers, 1)
	from := q.DepartureCity
	if from == "" {
		from = cfg.DefaultDepartureCity
	}

	flights := make([]Flight, 0, len(cfg.Schedule))
	for _, t := range cfg.Schedule {
		flights = append(flights, Flight{
			Airline:          t.Airline,
			AirlineCode:      t.AirlineCode,
			FlightNumber:     t.AirlineCode + t.Number,
			DepartureCity:    from,
			DestinationCity:  q.Destination,
			DepartureTime:    t.DepartureTime,
			ArrivalTime:      t.ArrivalTime,
			Duration:         t.Duration,
			Price:            roundCents(base * t.Factor * float64(passengers)),
			SeatsAvailable:   t.SeatsAvailable,
			CabinClass:       t.CabinClass,
			Stops:            t.Stops,
			StopoverCity:     t.StopoverCity,
			StopoverDuration: t.StopoverDuration,
			Aircraft:         t.Aircraft,
			Amenities:        append([]string(nil), t.Amenities...),
			BaggageAllowance: t.BaggageAllowance,
			Refundable:       t.Refundable,
			RefundFee:        t.RefundFee,
			DepartureDate:    q.DepartureDate,
			ReturnDate:       q.ReturnDate,
		})
	}
	return flights
}

// SearchHotels returns the five mock properties for q.Destination. A known
// Neighborhood pins every property to it; Amenities keeps only hotels that
// offer all of them (case-insensitive).
func (p *Provider) SearchHotels(q HotelQuery) []Hotel {
	cfg := p.catalog.Hotels
	base := lookupPrice(cfg.BasePrices, q.Destination, cfg.DefaultBasePrice)
	guests := max(q.Guests, 1)

	neighborhoods := cfg.Neighborhoods[q.Destination]
	if len(neighborhoods) == 0 {
		neighborhoods = cfg.GenericNeighborhoods
	}
	if q.Neighborhood != "" {
		for _, n := range neighborhoods {
			if strings.EqualFold(n, q.Neighborhood) {
				neighborhoods = []string{n}
				break
			}
		}
	}

	landmarks := cfg.Landmarks[q.Destination]
	if len(landmarks) == 0 {
		landmarks = cfg.GenericLandmarks
	}

	hotels := make([]Hotel, 0, len(cfg.Properties))
	for i, t := range cfg.Properties {
		if !hasAll(t.Amenities, q.Amenities) {
			continue
		}

		price := roundCents(base * t.Factor * (1 + float64(guests)*cfg.GuestSurcharge))
		hood := neighborhoods[i%len(neighborhoods)]
		nearby := []string{}
		if t.Landmark >= 0 && t.Landmark < len(landmarks) {
			nearby = append(nearby, landmarks[t.Landmark])
		}

		hotels = append(hotels, Hotel{
			Name:             strings.ReplaceAll(t.Name, destinationPlaceholder, q.Destination),
			Tier:             t.Tier,
			Rating:           t.Rating,
			PricePerNight:    price,
			Neighborhood:     hood,
			Address:          fmt.Sprintf("%s, %s, %s", t.Street, hood, q.Destination),
			DistanceToCenter: t.DistanceToCenter,
			NearbyLandmarks:  nearby,
			Amenities:        append([]string(nil), t.Amenities...),
			RoomTypes: []Room{{
				Name:      t.Room.Name,
				Beds:      t.Room.Beds,
				Size:      t.Room.Size,
				View:      t.Room.View,
				Price:     price,
				Available: t.Room.Available,
			}},
			BreakfastIncluded: t.BreakfastIncluded,
			FreeCancellation:  t.FreeCancellation,
			ReviewCount:       t.ReviewCount,
			Images:            append([]string(nil), t.Images...),
			CheckIn:           q.CheckIn,
			CheckOut:          q.CheckOut,
		})
	}
	return hotels
}

// DestinationInfo returns facts about destination narrowed to topic.
// Unknown topics return every section. Destinations without curated data,
// and curated destinations missing a section, use the generic tables.
func (p *Provider) DestinationInfo(topic, destination string) Info {
	generic := substitute(p.info.Generic, destination).(map[string]any)
	curated := p.info.Destinations[destination]

	section := func(name string) any {
		if v, ok := curated[name]; ok {
			return deepCopy(v)
		}
		return generic[name]
	}

	topic = strings.ToLower(strings.TrimSpace(topic))
	for name, synonyms := range p.info.Topics {
		for _, s := range synonyms {
			if s == topic {
				return Info{name: section(name)}
			}
		}
	}

	all := make(Info, len(generic))
	for name := range generic {
		all[name] = section(name)
	}
	return all
}

func lookupPrice(prices map[string]float64, destination string, fallback float64) float64 {
	if v, ok := prices[destination]; ok {
		return v
	}
	return fallback
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func hasAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// substitute deep-copies v replacing the destination placeholder in strings.
func substitute(v any, destination string) any {
	switch t := v.(type) {
	case string:
		return strings.ReplaceAll(t, destinationPlaceholder, destination)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = substitute(val, destination)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = substitute(val, destination)
		}
		return out
	default:
		return v
	}
}

func deepCopy(v any) any {
	return substitute(v, destinationPlaceholder)
}
