// Package models defines the documents stored by the service and the shapes of
// the analytics computed over them.
package models

// Collection names shared by every storage backend
const (
	SurveyCollection   = "surveys"
	FeedbackCollection = "feedback"
)

// Database liveness as reported by the health endpoint
const (
	DatabaseConnected    = "Connected"
	DatabaseDisconnected = "Disconnected"
)
