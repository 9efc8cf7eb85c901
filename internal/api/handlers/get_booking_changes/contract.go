package get_booking_changes

import (
	"context"
)

type BookingService interface {
	HasChanges(ctx context.Context, bookingID int64, draftID string, userID int64) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
