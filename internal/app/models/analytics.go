package models

// GroupCount is one bucket of a count-by-key aggregation.
type GroupCount struct {
	ID    string `json:"_id" bson:"_id" example:"CS"`
	Count int64  `json:"count" bson:"count" example:"12"`
}

// SurveyOverview summarises survey volume by department and year.
type SurveyOverview struct {
	Total        int64        `json:"total" bson:"total"`
	ByDepartment []GroupCount `json:"byDepartment" bson:"byDepartment"`
	ByYear       []GroupCount `json:"byYear" bson:"byYear"`
}

// BudgetAverages is the mean of each budget allocation weight across all surveys.
type BudgetAverages struct {
	AvgAcademics      float64 `json:"avgAcademics" bson:"avgAcademics"`
	AvgFacilities     float64 `json:"avgFacilities" bson:"avgFacilities"`
	AvgTechnology     float64 `json:"avgTechnology" bson:"avgTechnology"`
	AvgSupport        float64 `json:"avgSupport" bson:"avgSupport"`
	AvgInfrastructure float64 `json:"avgInfrastructure" bson:"avgInfrastructure"`
}

// DetailedAnalytics holds priority frequencies and budget averages.
type DetailedAnalytics struct {
	PriorityAnalysis []GroupCount     `json:"priorityAnalysis"`
	BudgetAnalysis   []BudgetAverages `json:"budgetAnalysis"`
}

// FeedbackStats summarises feedback volume, rating and categories.
type FeedbackStats struct {
	Total         int64        `json:"total" bson:"total"`
	AverageRating float64      `json:"averageRating" bson:"averageRating"`
	Categories    []GroupCount `json:"categories" bson:"categories"`
}

// NonNilGroups returns g, or an empty slice so JSON renders [] instead of null.
func NonNilGroups(g []GroupCount) []GroupCount {
	if g == nil {
		return []GroupCount{}
	}
	return g
}
