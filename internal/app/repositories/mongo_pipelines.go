package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yigit/campus-survey/internal/app/models"
)

// countByStages groups on field and sorts buckets by count desc, then key asc.
func countByStages(field string) bson.A {
	return bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
}

// countStage yields a single {count: n} document, or nothing on an empty input.
func countStage() bson.A {
	return bson.A{bson.D{{Key: "$count", Value: "count"}}}
}

// surveyOverviewPipeline computes total, byDepartment and byYear in one pass.
func surveyOverviewPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$facet", Value: bson.D{
			{Key: "total", Value: countStage()},
			{Key: "byDepartment", Value: countByStages("department")},
			{Key: "byYear", Value: countByStages("year")},
		}}},
	}
}

// priorityAnalysisPipeline expands topPriorities to one row per element and counts them.
func priorityAnalysisPipeline() mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$topPriorities"}},
	}
	for _, stage := range countByStages("topPriorities") {
		pipeline = append(pipeline, stage.(bson.D))
	}
	return pipeline
}

// budgetAnalysisPipeline averages each budgetAllocation weight over all surveys.
func budgetAnalysisPipeline() mongo.Pipeline {
	avg := func(field string) bson.D {
		return bson.D{{Key: "$avg", Value: "$budgetAllocation." + field}}
	}
	orZero := func(field string) bson.D {
		return bson.D{{Key: "$ifNull", Value: bson.A{"$" + field, 0}}}
	}
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avgAcademics", Value: avg("academics")},
			{Key: "avgFacilities", Value: avg("facilities")},
			{Key: "avgTechnology", Value: avg("technology")},
			{Key: "avgSupport", Value: avg("support")},
			{Key: "avgInfrastructure", Value: avg("infrastructure")},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "avgAcademics", Value: orZero("avgAcademics")},
			{Key: "avgFacilities", Value: orZero("avgFacilities")},
			{Key: "avgTechnology", Value: orZero("avgTechnology")},
			{Key: "avgSupport", Value: orZero("avgSupport")},
			{Key: "avgInfrastructure", Value: orZero("avgInfrastructure")},
		}}},
	}
}

// feedbackStatsPipeline computes total, mean rating and per-category counts in one pass.
func feedbackStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$facet", Value: bson.D{
			{Key: "total", Value: countStage()},
			{Key: "rating", Value: bson.A{
				bson.D{{Key: "$group", Value: bson.D{
					{Key: "_id", Value: nil},
					{Key: "average", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
				}}},
			}},
			{Key: "categories", Value: countByStages("category")},
		}}},
	}
}

// interviewCandidatesQuery returns the filter and find options of the candidate listing.
func interviewCandidatesQuery() (bson.D, *options.FindOptions) {
	projection := bson.D{{Key: "_id", Value: 0}}
	for _, field := range models.InterviewCandidateFields {
		projection = append(projection, bson.E{Key: field, Value: 1})
	}
	filter := bson.D{{Key: "contactForInterview", Value: true}}
	opts := options.Find().
		SetProjection(projection).
		SetSort(bson.D{{Key: "submittedAt", Value: 1}})
	return filter, opts
}

// recentFeedbackOptions sorts newest first and caps the result.
func recentFeedbackOptions(limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
}
