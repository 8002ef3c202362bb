package response_models

// Activity categories, matching the values the frontend renders.
const (
	CategoryAttraction = "attraction"
	CategoryRestaurant = "restaurant"
	CategoryHotel      = "hotel"
	CategoryTransport  = "transport"
	CategoryActivity   = "activity"
)

type TravelActivity struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Price       string `json:"price,omitempty"`
	BookingURL  string `json:"bookingUrl,omitempty"`
}

type TravelSchedule struct {
	Day        int              `json:"day"`
	Date       string           `json:"date"`
	Activities []TravelActivity `json:"activities"`
}

type DayActivitiesResponse struct {
	Activities []TravelActivity `json:"activities"`
}

type ItineraryResponse struct {
	Schedules []TravelSchedule `json:"schedules"`
}
