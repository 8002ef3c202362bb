package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tripforge/internal/models/maps_models"
	"tripforge/internal/models/response_models"
	"tripforge/pkg/config"
	"tripforge/pkg/utils"
)

// TravelPreferences is one itinerary request: a date range, a free-text
// destination and a travel-style tag.
type TravelPreferences struct {
	StartDate   time.Time
	EndDate     time.Time
	Destination string
	Purpose     string
}

type ItineraryServiceInterface interface {
	// ActivitiesForDay runs the live path for a single day: geocode the
	// destination, query the three categories, assemble the day. Any
	// upstream failure fails the whole day.
	ActivitiesForDay(ctx context.Context, date time.Time, destination, purpose string) ([]response_models.TravelActivity, error)

	// BuildItinerary produces one schedule per day in the range. A day
	// whose live assembly fails gets fallback activities instead; the
	// caller never observes partial failure.
	BuildItinerary(ctx context.Context, prefs TravelPreferences) ([]response_models.TravelSchedule, error)
}

type ItineraryService struct {
	maps     MapsServiceInterface
	fallback FallbackServiceInterface
	radius   int
	useMock  bool
}

func NewItineraryService(maps MapsServiceInterface, fallback FallbackServiceInterface, cfg *config.Config) ItineraryServiceInterface {
	return &ItineraryService{
		maps:     maps,
		fallback: fallback,
		radius:   cfg.SearchRadiusMeters,
		useMock:  cfg.UseMockData,
	}
}

func (s *ItineraryService) ActivitiesForDay(ctx context.Context, date time.Time, destination, purpose string) ([]response_models.TravelActivity, error) {
	center, err := s.maps.Geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	// The three category lookups are independent; run them together.
	// One failure cancels the rest and fails the day.
	var attractions, restaurants, lodgings []maps_models.PlaceResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		attractions, err = s.maps.NearbySearch(gctx, center, PlaceTypeAttraction, s.radius)
		return err
	})
	g.Go(func() error {
		var err error
		restaurants, err = s.maps.NearbySearch(gctx, center, PlaceTypeRestaurant, s.radius)
		return err
	})
	g.Go(func() error {
		var err error
		lodgings, err = s.maps.NearbySearch(gctx, center, PlaceTypeLodging, s.radius)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return assembleDay(attractions, restaurants, lodgings), nil
}

func (s *ItineraryService) BuildItinerary(ctx context.Context, prefs TravelPreferences) ([]response_models.TravelSchedule, error) {
	if prefs.Destination == "" {
		return nil, utils.ErrDestinationRequired
	}
	if prefs.EndDate.Before(prefs.StartDate) {
		return nil, utils.ErrInvalidDateRange
	}

	days := utils.DayCount(prefs.StartDate, prefs.EndDate)
	schedules := make([]response_models.TravelSchedule, 0, days)

	for day := 1; day <= days; day++ {
		date := utils.AddDays(prefs.StartDate, day-1)

		var activities []response_models.TravelActivity
		if s.useMock {
			activities = s.fallback.MockActivities(date, prefs.Destination, prefs.Purpose)
		} else {
			live, err := s.ActivitiesForDay(ctx, date, prefs.Destination, prefs.Purpose)
			if err != nil {
				log.Printf("Live assembly failed for day %d, using fallback: %v", day, err)
				live = s.fallback.MockActivities(date, prefs.Destination, prefs.Purpose)
			}
			activities = live
		}

		schedules = append(schedules, response_models.TravelSchedule{
			Day:        day,
			Date:       utils.FormatDate(date),
			Activities: activities,
		})
	}

	return schedules, nil
}

// Fixed daily template: the top-ranked place of each non-empty category
// gets a fixed slot, then the day is sorted by hour.
func assembleDay(attractions, restaurants, lodgings []maps_models.PlaceResult) []response_models.TravelActivity {
	activities := make([]response_models.TravelActivity, 0, 3)

	if len(attractions) > 0 {
		activities = append(activities,
			placeActivity(attractions[0], "09:00", "2 hours", response_models.CategoryAttraction))
	}
	if len(restaurants) > 0 {
		activities = append(activities,
			placeActivity(restaurants[0], "12:00", "1 hour", response_models.CategoryRestaurant))
	}
	if len(lodgings) > 0 {
		activities = append(activities,
			placeActivity(lodgings[0], "15:00", "check-in", response_models.CategoryHotel))
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return utils.HourOf(activities[i].Time) < utils.HourOf(activities[j].Time)
	})

	return activities
}

func placeActivity(place maps_models.PlaceResult, slot, duration, category string) response_models.TravelActivity {
	location := place.Vicinity
	if location == "" {
		location = "no location info"
	}

	activity := response_models.TravelActivity{
		Time:        slot,
		Title:       place.Name,
		Description: location,
		Location:    location,
		Category:    category,
		Duration:    duration,
	}

	if place.PriceLevel != nil {
		activity.Price = strings.Repeat("💰", *place.PriceLevel)
	}

	return activity
}
