package services

import (
	"context"
	"time"

	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/app/repositories"
)

// healthPingTimeout bounds the database probe of a health check
const healthPingTimeout = 2 * time.Second

// HealthService reports whether the storage connector is reachable
type HealthService interface {
	DatabaseStatus(ctx context.Context) string
}

type healthServiceImpl struct {
	checker repositories.HealthChecker
}

// NewHealthService creates a new health service instance
func NewHealthService(checker repositories.HealthChecker) HealthService {
	return &healthServiceImpl{checker: checker}
}

// DatabaseStatus returns models.DatabaseConnected or models.DatabaseDisconnected
func (s *healthServiceImpl) DatabaseStatus(ctx context.Context) string {
	if s.checker == nil {
		return models.DatabaseDisconnected
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := s.checker.Ping(ctx); err != nil {
		return models.DatabaseDisconnected
	}
	return models.DatabaseConnected
}
