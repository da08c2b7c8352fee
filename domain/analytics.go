package domain

import "time"

var (
	MessageSuccessGetAnalytics = "analytics retrieved successfully"
	MessageSuccessGetDashboard = "dashboard stats retrieved successfully"
	MessageSuccessGetImpact    = "environmental impact retrieved successfully"
	MessageFailedGetAnalytics  = "failed to retrieve analytics"
	MessageFailedGetDashboard  = "failed to retrieve dashboard stats"
)

type (
	EnvironmentalImpact struct {
		FoodSaved              float64 `json:"food_saved"`
		CarbonFootprintReduced float64 `json:"carbon_footprint_reduced"`
		WaterFootprintReduced  float64 `json:"water_footprint_reduced"`
		PeopleServed           int     `json:"people_served"`
	}

	CategoryStat struct {
		Category   string `json:"category"`
		Count      int    `json:"count"`
		Percentage int    `json:"percentage"`
	}

	LocationStat struct {
		Location string `json:"location"`
		Count    int    `json:"count"`
	}

	WeeklyTrend struct {
		Day         string `json:"day"`
		Listings    int    `json:"listings"`
		Collections int    `json:"collections"`
	}

	DashboardStats struct {
		Role     string         `json:"role"`
		Counters map[string]int `json:"counters"`
		AsOf     time.Time      `json:"as_of"`
	}
)
