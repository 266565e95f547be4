package travelmock

// FlightQuery selects mock flights.
type FlightQuery struct {
	Destination   string
	DepartureDate string
	ReturnDate    string
	Passengers    int
	DepartureCity string
}

// Flight is one mock flight offer.
type Flight struct {
	Airline          string   `json:"airline"`
	AirlineCode      string   `json:"airline_code"`
	FlightNumber     string   `json:"flight_number"`
	DepartureCity    string   `json:"departure_city"`
	DestinationCity  string   `json:"destination_city"`
	DepartureTime    string   `json:"departure_time"`
	ArrivalTime      string   `json:"arrival_time"`
	Duration         string   `json:"duration"`
	Price            float64  `json:"price"`
	SeatsAvailable   int      `json:"seats_available"`
	CabinClass       string   `json:"cabin_class"`
	Stops            int      `json:"stops"`
	StopoverCity     string   `json:"stopover_city,omitempty"`
	StopoverDuration string   `json:"stopover_duration,omitempty"`
	Aircraft         string   `json:"aircraft"`
	Amenities        []string `json:"amenities"`
	BaggageAllowance string   `json:"baggage_allowance"`
	Refundable       bool     `json:"refundable"`
	RefundFee        string   `json:"refund_fee,omitempty"`
	DepartureDate    string   `json:"departure_date"`
	ReturnDate       string   `json:"return_date,omitempty"`
}

// HotelQuery selects mock hotels. Neighborhood and Amenities are optional
// filters.
type HotelQuery struct {
	Destination  string
	CheckIn      string
	CheckOut     string
	Guests       int
	Neighborhood string
	Amenities    []string
}

// Room is a bookable room type.
type Room struct {
	Name      string  `json:"name"`
	Beds      string  `json:"beds"`
	Size      string  `json:"size"`
	View      string  `json:"view"`
	Price     float64 `json:"price"`
	Available int     `json:"available"`
}

// Hotel is one mock hotel offer.
type Hotel struct {
	Name              string   `json:"name"`
	Tier              string   `json:"tier"`
	Rating            float64  `json:"rating"`
	PricePerNight     float64  `json:"price_per_night"`
	Neighborhood      string   `json:"neighborhood"`
	Address           string   `json:"address"`
	DistanceToCenter  string   `json:"distance_to_center"`
	NearbyLandmarks   []string `json:"nearby_landmarks"`
	Amenities         []string `json:"amenities"`
	RoomTypes         []Room   `json:"room_types"`
	BreakfastIncluded bool     `json:"breakfast_included"`
	FreeCancellation  bool     `json:"free_cancellation"`
	ReviewCount       int      `json:"review_count"`
	Images            []string `json:"images"`
	CheckIn           string   `json:"check_in"`
	CheckOut          string   `json:"check_out,omitempty"`
}

// Info is a destination fact sheet keyed by section name.
type Info map[string]any

// catalog mirrors data/catalog.yaml.
type catalog struct {
	Flights struct {
		DefaultDepartureCity string             `yaml:"default_departure_city"`
		DefaultBasePrice     float64            `yaml:"default_base_price"`
		BasePrices           map[string]float64 `yaml:"base_prices"`
		Schedule             []flightTemplate   `yaml:"schedule"`
	} `yaml:"flights"`
	Hotels struct {
		DefaultBasePrice     float64             `yaml:"default_base_price"`
		GuestSurcharge       float64             `yaml:"guest_surcharge"`
		BasePrices           map[string]float64  `yaml:"base_prices"`
		Neighborhoods        map[string][]string `yaml:"neighborhoods"`
		GenericNeighborhoods []string            `yaml:"generic_neighborhoods"`
		Landmarks            map[string][]string `yaml:"landmarks"`
		GenericLandmarks     []string            `yaml:"generic_landmarks"`
		Properties           []hotelTemplate     `yaml:"properties"`
	} `yaml:"hotels"`
}

type flightTemplate struct {
	Airline          string   `yaml:"airline"`
	AirlineCode      string   `yaml:"airline_code"`
	Number           string   `yaml:"number"`
	DepartureTime    string   `yaml:"departure_time"`
	ArrivalTime      string   `yaml:"arrival_time"`
	Duration         string   `yaml:"duration"`
	Factor           float64  `yaml:"factor"`
	SeatsAvailable   int      `yaml:"seats_available"`
	CabinClass       string   `yaml:"cabin_class"`
	Stops            int      `yaml:"stops"`
	StopoverCity     string   `yaml:"stopover_city"`
	StopoverDuration string   `yaml:"stopover_duration"`
	Aircraft         string   `yaml:"aircraft"`
	Amenities        []string `yaml:"amenities"`
	BaggageAllowance string   `yaml:"baggage_allowance"`
	Refundable       bool     `yaml:"refundable"`
	RefundFee        string   `yaml:"refund_fee"`
}

type hotelTemplate struct {
	Name              string       `yaml:"name"`
	Tier              string       `yaml:"tier"`
	Rating            float64      `yaml:"rating"`
	Factor            float64      `yaml:"factor"`
	Street            string       `yaml:"street"`
	DistanceToCenter  string       `yaml:"distance_to_center"`
	Landmark          int          `yaml:"landmark"`
	Amenities         []string     `yaml:"amenities"`
	Room              roomTemplate `yaml:"room"`
	BreakfastIncluded bool         `yaml:"breakfast_included"`
	FreeCancellation  bool         `yaml:"free_cancellation"`
	ReviewCount       int          `yaml:"review_count"`
	Images            []string     `yaml:"images"`
}

type roomTemplate struct {
	Name      string `yaml:"name"`
	Beds      string `yaml:"beds"`
	Size      string `yaml:"size"`
	View      string `yaml:"view"`
	Available int    `yaml:"available"`
}

// infoTables mirrors data/info.yaml.
type infoTables struct {
	Destinations map[string]map[string]any `yaml:"destinations"`
	Generic      map[string]any            `yaml:"generic"`
	Topics       map[string][]string       `yaml:"topics"`
}
