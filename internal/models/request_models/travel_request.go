package request_models

// TravelPlanRequest is the shared body of /api/travel and /api/itinerary.
// Dates are "2006-01-02" or RFC3339 strings; purpose defaults to
// "sightseeing" when omitted.
type TravelPlanRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Country   string `json:"country"`
	Purpose   string `json:"purpose" binding:"omitempty,oneof=family couple friends relaxation sightseeing"`
}
