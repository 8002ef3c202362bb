package services

import (
	"fmt"
	"strings"
	"time"

	"tripforge/internal/models/response_models"
)

// FallbackServiceInterface produces mock activities when the live maps
// path is unavailable (or mock mode is enabled). Output is deterministic
// for a given (date, destination, purpose).
type FallbackServiceInterface interface {
	MockActivities(date time.Time, destination, purpose string) []response_models.TravelActivity
}

type FallbackService struct{}

func NewFallbackService() FallbackServiceInterface {
	return &FallbackService{}
}

type mockCandidate struct {
	Title       string
	Description string
	Location    string
}

// Three candidates per purpose and category; the day of month rotates
// through them so consecutive days do not repeat.
var mockAttractions = map[string][3]mockCandidate{
	"family": {
		{"City Zoo Visit", "Spend the morning with the animals at the zoo of %s", "city zoo"},
		{"Science Museum", "Hands-on exhibits the whole family can enjoy", "museum district"},
		{"Amusement Park", "Rides and shows at the biggest park near %s", "amusement park"},
	},
	"couple": {
		{"Botanical Garden Walk", "A quiet stroll through the gardens of %s", "botanical garden"},
		{"Historic Old Town", "Wander the romantic old quarter hand in hand", "old town"},
		{"Scenic Viewpoint", "Panoramic views over %s at the lookout", "hilltop lookout"},
	},
	"friends": {
		{"Street Market Tour", "Browse the liveliest market stalls in %s", "central market"},
		{"Bike City Tour", "Cover the highlights of the city by bike", "city center"},
		{"Escape Room Challenge", "Team up and beat the clock together", "entertainment district"},
	},
	"relaxation": {
		{"Lakeside Morning", "Slow morning by the water near %s", "lakeside"},
		{"City Park Picnic", "Unhurried picnic under the trees", "city park"},
		{"Riverside Promenade", "Easy walk along the river promenade", "riverside"},
	},
	"sightseeing": {
		{"Landmark Tour", "Visit the signature landmark of %s", "city center"},
		{"National Museum", "The essential collection of the region", "museum district"},
		{"Cathedral Quarter", "Architecture walk through the historic quarter", "old town"},
	},
}

var mockRestaurants = map[string][3]mockCandidate{
	"family": {
		{"Family Diner Lunch", "Generous portions and a kids' menu", "downtown"},
		{"Pizza Trattoria", "Wood-fired pizza everyone agrees on", "city center"},
		{"Pancake House", "Sweet and savory stacks near %s", "market square"},
	},
	"couple": {
		{"Candlelit Bistro", "Intimate two-top with a view of %s", "old town"},
		{"Wine Bar Lunch", "Local wines with small plates", "wine quarter"},
		{"Rooftop Restaurant", "Lunch above the rooftops of %s", "rooftop terrace"},
	},
	"friends": {
		{"Street Food Crawl", "Share everything the stalls of %s offer", "night market"},
		{"Burger Joint", "Loud, fast and exactly right", "downtown"},
		{"Tapas Round", "Plates keep coming until someone gives up", "tapas alley"},
	},
	"relaxation": {
		{"Garden Cafe", "Light lunch in a quiet courtyard", "garden cafe"},
		{"Tea House", "Slow pot of tea and pastries", "tea district"},
		{"Organic Kitchen", "Seasonal plates, no rush", "market square"},
	},
	"sightseeing": {
		{"Local Specialty Lunch", "The dish %s is known for", "city center"},
		{"Market Hall Counter", "Eat where the vendors eat", "market hall"},
		{"Historic Brasserie", "A dining room older than the guidebook", "old town"},
	},
}

var mockSpecials = map[string][3]mockCandidate{
	"family": {
		{"Aquarium Afternoon", "Touch tanks and the shark tunnel", "aquarium"},
		{"Mini Golf", "Eighteen holes of family rivalry", "leisure park"},
		{"Puppet Theater", "A matinee show for all ages", "theater district"},
	},
	"couple": {
		{"Sunset River Cruise", "Golden hour on the water near %s", "river pier"},
		{"Couples Cooking Class", "Cook the local classic together", "culinary school"},
		{"Art Gallery Evening", "Contemporary wing, then a slow coffee", "gallery quarter"},
	},
	"friends": {
		{"Kayak Rental", "Race each other across the bay", "boat house"},
		{"Live Music Bar", "Whatever is playing in %s tonight", "music quarter"},
		{"Bowling Night Warmup", "Best of three, loser buys dinner", "bowling alley"},
	},
	"relaxation": {
		{"Spa Afternoon", "Sauna, pool and nothing on the schedule", "wellness center"},
		{"Beach Time", "A towel and the sound of waves near %s", "beach"},
		{"Yoga Session", "Open-air class at a gentle pace", "city park"},
	},
	"sightseeing": {
		{"Guided Walking Tour", "Two hours of stories about %s", "tourist office"},
		{"Observation Deck", "The whole city in one look", "observation tower"},
		{"Heritage Tram Ride", "Cross the city the old way", "tram terminus"},
	},
}

func (f *FallbackService) MockActivities(date time.Time, destination, purpose string) []response_models.TravelActivity {
	attractions, ok := mockAttractions[purpose]
	if !ok {
		purpose = "sightseeing"
		attractions = mockAttractions[purpose]
	}
	restaurants := mockRestaurants[purpose]
	specials := mockSpecials[purpose]

	d := date.Day()
	attraction := attractions[d%3]
	restaurant := restaurants[(d+1)%3]
	special := specials[(d+2)%3]

	return []response_models.TravelActivity{
		{
			Time:        "09:00",
			Title:       attraction.Title,
			Description: interpolate(attraction.Description, destination),
			Location:    attraction.Location,
			Category:    response_models.CategoryAttraction,
			Duration:    "2 hours",
		},
		{
			Time:        "12:00",
			Title:       restaurant.Title,
			Description: interpolate(restaurant.Description, destination),
			Location:    restaurant.Location,
			Category:    response_models.CategoryRestaurant,
			Duration:    "1 hour",
		},
		{
			Time:        "14:00",
			Title:       special.Title,
			Description: interpolate(special.Description, destination),
			Location:    special.Location,
			Category:    response_models.CategoryActivity,
			Duration:    "3 hours",
		},
		{
			Time:        "15:00",
			Title:       "Luxury Hotel Check-in",
			Description: interpolate("Check in and unwind at a luxury hotel in %s", destination),
			Location:    "hotel district",
			Category:    response_models.CategoryHotel,
			Duration:    "check-in",
		},
	}
}

// interpolate fills the destination into templates that carry a %s verb.
func interpolate(tmpl, destination string) string {
	if destination == "" {
		destination = "the city"
	}
	if !strings.Contains(tmpl, "%s") {
		return tmpl
	}
	return fmt.Sprintf(tmpl, destination)
}
