package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/db"
	"github.com/yigit/campus-survey/internal/pkg/dberrors"
)

// feedbackDocument is a feedback entry as stored in the feedback collection
type feedbackDocument struct {
	ID                   primitive.ObjectID `bson:"_id"`
	models.FeedbackEntry `bson:",inline"`
}

// MongoFeedbackRepository handles feedback documents in MongoDB
type MongoFeedbackRepository struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepository creates a new MongoFeedbackRepository
func NewMongoFeedbackRepository(database *db.MongoDB) *MongoFeedbackRepository {
	return &MongoFeedbackRepository{coll: database.Collection(models.FeedbackCollection)}
}

// CreateFeedback inserts a validated feedback entry
func (r *MongoFeedbackRepository) CreateFeedback(ctx context.Context, entry *models.FeedbackEntry) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}

	doc := feedbackDocument{ID: primitive.NewObjectID(), FeedbackEntry: *entry}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logDBError(err, "Error inserting feedback document")
		return "", dberrors.Wrap("insert feedback", err)
	}

	return doc.ID.Hex(), nil
}

// ListRecentFeedback returns the newest entries first
func (r *MongoFeedbackRepository) ListRecentFeedback(ctx context.Context, limit int64) ([]*models.FeedbackEntry, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, recentFeedbackOptions(limit))
	if err != nil {
		logDBError(err, "Error finding feedback")
		return nil, dberrors.Wrap("list feedback", err)
	}

	var docs []feedbackDocument
	if err := cursor.All(ctx, &docs); err != nil {
		logDBError(err, "Error decoding feedback")
		return nil, dberrors.Wrap("list feedback", err)
	}

	entries := make([]*models.FeedbackEntry, 0, len(docs))
	for i := range docs {
		entry := docs[i].FeedbackEntry
		entry.ID = docs[i].ID.Hex()
		entries = append(entries, &entry)
	}
	return entries, nil
}

// GetFeedbackStats computes total, mean rating and per-category counts
func (r *MongoFeedbackRepository) GetFeedbackStats(ctx context.Context) (*models.FeedbackStats, error) {
	var facets []struct {
		Total []struct {
			Count int64 `bson:"count"`
		} `bson:"total"`
		Rating []struct {
			Average *float64 `bson:"average"`
		} `bson:"rating"`
		Categories []models.GroupCount `bson:"categories"`
	}
	if err := aggregate(ctx, r.coll, feedbackStatsPipeline(), &facets); err != nil {
		return nil, dberrors.Wrap("feedback stats", err)
	}

	stats := &models.FeedbackStats{Categories: []models.GroupCount{}}
	if len(facets) == 0 {
		return stats, nil
	}
	if len(facets[0].Total) > 0 {
		stats.Total = facets[0].Total[0].Count
	}
	if len(facets[0].Rating) > 0 && facets[0].Rating[0].Average != nil {
		stats.AverageRating = *facets[0].Rating[0].Average
	}
	stats.Categories = models.NonNilGroups(facets[0].Categories)
	return stats, nil
}
