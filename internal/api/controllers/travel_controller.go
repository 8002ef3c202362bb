package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type TravelController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewTravelController(itineraryService services.ItineraryServiceInterface) *TravelController {
	return &TravelController{
		itineraryService: itineraryService,
	}
}

// GetDayActivities godoc
// @Summary Generate activities for a single day
// @Description Geocodes the destination and assembles one day of activities from nearby places
// @Tags Travel
// @Accept json
// @Produce json
// @Success 200 {object} response_models.DayActivitiesResponse
// @Router /api/travel [post]
func (t *TravelController) GetDayActivities(c *gin.Context) {
	var req request_models.TravelPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	// Validate before anything leaves the process.
	if req.Country == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	date, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	activities, err := t.itineraryService.ActivitiesForDay(c.Request.Context(), date, req.Country, purposeOrDefault(req.Purpose))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.DayActivitiesResponse{Activities: activities})
}

// GetItinerary godoc
// @Summary Generate a full day-by-day itinerary
// @Description One schedule per day in the range; days that fail live assembly fall back to mock activities
// @Tags Travel
// @Accept json
// @Produce json
// @Success 200 {object} response_models.ItineraryResponse
// @Router /api/itinerary [post]
func (t *TravelController) GetItinerary(c *gin.Context) {
	var req request_models.TravelPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Country == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	prefs := services.TravelPreferences{
		StartDate:   startDate,
		EndDate:     endDate,
		Destination: req.Country,
		Purpose:     purposeOrDefault(req.Purpose),
	}

	schedules, err := t.itineraryService.BuildItinerary(c.Request.Context(), prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.ItineraryResponse{Schedules: schedules})
}

func purposeOrDefault(purpose string) string {
	if purpose == "" {
		return "sightseeing"
	}
	return purpose
}
