package types

type ForecastRequest struct {
	DisasterType   string  `json:"disaster_type" binding:"required"`
	Location       string  `json:"location" binding:"required"`
	Population     int     `json:"population" binding:"required,min=1"`
	Severity       int     `json:"severity" binding:"required,min=1,max=10"`
	TimeframeDays  int     `json:"timeframe_days" binding:"required,min=1"`
	Infrastructure float64 `json:"infrastructure"` // percent, 0-100
	Weather        string  `json:"weather"`
}

type ResourceNeeds struct {
	Food    int `json:"food"`
	Water   int `json:"water"`
	Medical int `json:"medical"`
	Shelter int `json:"shelter"`
}

type TimelineEntry struct {
	Day           int      `json:"day"`
	Urgency       float64  `json:"urgency"`
	CriticalNeeds []string `json:"criticalNeeds"`
}

type ForecastResult struct {
	TotalNeeds ResourceNeeds   `json:"totalNeeds"`
	DailyNeeds ResourceNeeds   `json:"dailyNeeds"`
	Timeline   []TimelineEntry `json:"timeline"`
	Confidence float64         `json:"confidence"`
	AIInsights string          `json:"aiInsights"`

	// Resolved from the free-text location when entity extraction and
	// geocoding succeed; zero otherwise.
	ResolvedAddress string  `json:"resolvedAddress,omitempty"`
	ResolvedLat     float64 `json:"resolvedLat,omitempty"`
	ResolvedLong    float64 `json:"resolvedLong,omitempty"`
}
