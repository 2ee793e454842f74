package models

import (
	"time"

	"github.com/yigit/campus-survey/internal/pkg/validation"
)

// BudgetAllocation holds the respondent's weighting of five spending areas.
// Absent weights are 0.
type BudgetAllocation struct {
	Academics      float64 `json:"academics" bson:"academics" example:"30"`
	Facilities     float64 `json:"facilities" bson:"facilities" example:"20"`
	Technology     float64 `json:"technology" bson:"technology" example:"25"`
	Support        float64 `json:"support" bson:"support" example:"15"`
	Infrastructure float64 `json:"infrastructure" bson:"infrastructure" example:"10"`
}

// SurveyResponse is one campus resource survey submission.
type SurveyResponse struct {
	ID string `json:"_id,omitempty" bson:"-"`

	// Identity and demographics
	StudentID     string `json:"studentId" bson:"studentId" validate:"required" example:"S1"`
	Name          string `json:"name" bson:"name" validate:"required" example:"Ada Lovelace"`
	Email         string `json:"email" bson:"email" validate:"required" example:"ada@campus.edu"`
	Year          string `json:"year" bson:"year" validate:"required" example:"2"`
	Department    string `json:"department" bson:"department" validate:"required" example:"CS"`
	Program       string `json:"program" bson:"program" validate:"required" example:"BS"`
	Accommodation string `json:"accommodation" bson:"accommodation" example:"on-campus"`

	// Resource needs
	LibraryNeeds     []string `json:"libraryNeeds" bson:"libraryNeeds"`
	LibraryUsage     string   `json:"libraryUsage" bson:"libraryUsage" example:"weekly"`
	LabAccess        *float64 `json:"labAccess,omitempty" bson:"labAccess,omitempty" example:"3"`
	LabNeeds         []string `json:"labNeeds" bson:"labNeeds"`
	SoftwareNeeds    []string `json:"softwareNeeds" bson:"softwareNeeds"`
	DeviceAccess     []string `json:"deviceAccess" bson:"deviceAccess"`
	InternetQuality  *float64 `json:"internetQuality,omitempty" bson:"internetQuality,omitempty" example:"4"`
	DigitalPlatforms []string `json:"digitalPlatforms" bson:"digitalPlatforms"`
	DiningNeeds      []string `json:"diningNeeds" bson:"diningNeeds"`
	RecreationNeeds  []string `json:"recreationNeeds" bson:"recreationNeeds"`
	TransportNeeds   []string `json:"transportNeeds" bson:"transportNeeds"`
	HealthcareNeeds  []string `json:"healthcareNeeds" bson:"healthcareNeeds"`
	TopPriorities    []string `json:"topPriorities" bson:"topPriorities"`

	BudgetAllocation BudgetAllocation `json:"budgetAllocation" bson:"budgetAllocation"`

	// Engagement
	Suggestions         string `json:"suggestions" bson:"suggestions"`
	VolunteerInterest   bool   `json:"volunteerInterest" bson:"volunteerInterest"`
	ContactForInterview bool   `json:"contactForInterview" bson:"contactForInterview"`

	// Metadata
	SubmittedAt time.Time              `json:"submittedAt" bson:"submittedAt"`
	DeviceInfo  map[string]interface{} `json:"deviceInfo,omitempty" bson:"deviceInfo,omitempty"`
	UserAgent   string                 `json:"userAgent" bson:"userAgent"`
}

// Validate checks the required identity fields.
func (s *SurveyResponse) Validate() error {
	return validation.Struct(s)
}

// ApplyDefaults fills the optional fields a stored document always carries.
func (s *SurveyResponse) ApplyDefaults(now time.Time) {
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = now
	}
	for _, set := range []*[]string{
		&s.LibraryNeeds, &s.LabNeeds, &s.SoftwareNeeds, &s.DeviceAccess,
		&s.DigitalPlatforms, &s.DiningNeeds, &s.RecreationNeeds,
		&s.TransportNeeds, &s.HealthcareNeeds, &s.TopPriorities,
	} {
		if *set == nil {
			*set = []string{}
		}
	}
}

// InterviewCandidate is the projection of a survey whose author agreed to be contacted.
type InterviewCandidate struct {
	Name          string    `json:"name" bson:"name"`
	Email         string    `json:"email" bson:"email"`
	Department    string    `json:"department" bson:"department"`
	Year          string    `json:"year" bson:"year"`
	TopPriorities []string  `json:"topPriorities" bson:"topPriorities"`
	Suggestions   string    `json:"suggestions" bson:"suggestions"`
	SubmittedAt   time.Time `json:"submittedAt" bson:"submittedAt"`
}

// InterviewCandidateFields lists the document fields kept by the candidate projection.
var InterviewCandidateFields = []string{
	"name", "email", "department", "year", "topPriorities", "suggestions", "submittedAt",
}
