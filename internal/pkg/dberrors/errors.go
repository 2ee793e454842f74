package dberrors

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/campus-survey/internal/pkg/apperrors"
)

// IsConnectionError reports whether err comes from an unreachable or timed out database
// rather than from a rejected statement.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, mongo.ErrClientDisconnected) {
		return true
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	return pgconn.Timeout(err)
}

// Wrap converts a driver error into an apperrors.InfrastructureError for operation op.
// Validation errors pass through untouched.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsValidation(err) || apperrors.IsInfrastructure(err) {
		return err
	}
	return apperrors.NewInfrastructureError(op, err)
}
