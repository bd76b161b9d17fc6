package engagement

type PathPopularity struct {
	PathTitle string `json:"pathTitle"`
	Count     int64  `json:"count"`
}

// PathTimeSpent is nil-valued for paths without recorded events.
type PathTimeSpent struct {
	PathTitle        string   `json:"pathTitle"`
	AverageTimeSpent *float64 `json:"averageTimeSpent"`
	TotalTimeSpent   *int64   `json:"totalTimeSpent"`
}

// PathTimeAggregate is one GROUP BY row of the event log.
type PathTimeAggregate struct {
	PathTitle        string
	AverageTimeSpent float64
	TotalTimeSpent   int64
}
