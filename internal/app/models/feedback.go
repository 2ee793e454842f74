package models

import (
	"time"

	"github.com/yigit/campus-survey/internal/pkg/validation"
)

// FeedbackStatusNew is the status every entry starts with.
const FeedbackStatusNew = "new"

// Rating bounds for feedback entries (inclusive)
const (
	MinRating = 1
	MaxRating = 5
)

// FeedbackEntry is one feedback item left by a campus user.
type FeedbackEntry struct {
	ID        string    `json:"_id,omitempty" bson:"-"`
	Name      string    `json:"name" bson:"name" validate:"required" example:"Ada Lovelace"`
	Email     string    `json:"email" bson:"email" validate:"required" example:"ada@campus.edu"`
	Category  string    `json:"category" bson:"category" validate:"required" example:"facilities"`
	Rating    int       `json:"rating" bson:"rating" validate:"min=1,max=5" example:"4"`
	Message   string    `json:"message" bson:"message" validate:"required" example:"More study rooms please"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	UserAgent string    `json:"userAgent" bson:"userAgent"`
	Status    string    `json:"status" bson:"status" example:"new"`
	// Response is written by the admin workflow, never by this service.
	Response *string `json:"response,omitempty" bson:"response,omitempty"`
}

// Validate checks required fields and the rating range.
func (f *FeedbackEntry) Validate() error {
	return validation.Struct(f)
}

// ApplyDefaults sets the insertion timestamp and the initial status. Status and
// response belong to the admin workflow, so values sent by the client are dropped.
func (f *FeedbackEntry) ApplyDefaults(now time.Time) {
	if f.Timestamp.IsZero() {
		f.Timestamp = now
	}
	f.Status = FeedbackStatusNew
	f.Response = nil
}
