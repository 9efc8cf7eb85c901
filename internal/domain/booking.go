package domain

import "time"

// BookingStatus represents the status of a confirmed booking
type BookingStatus string

const (
	BookingStatusConfirmed       BookingStatus = "confirmed"
	BookingStatusPendingApproval BookingStatus = "pending_approval"
	BookingStatusCompleted       BookingStatus = "completed"
	BookingStatusCancelled       BookingStatus = "cancelled"
)

// Booking is a confirmed booking: the authoritative record a draft is
// reconciled and compared against. Occurrences carry durable integer ids
// (rendered as strings to share the Occurrence type with drafts).
type Booking struct {
	ID             int64
	ProfessionalID int64
	ClientID       int64
	Status         BookingStatus

	ServiceID   int64
	ServiceName string

	Pets        []Pet
	Occurrences []Occurrence
	CostSummary *CostSummary

	// PromotedFromDraftID links back to the draft this booking was built from
	PromotedFromDraftID *string

	// RequiresApproval is set when promotion detected changes against the
	// previous confirmed state and a re-approval cycle is needed
	RequiresApproval bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

// CanBeSuperseded returns true if a draft may be promoted over this booking
func (b *Booking) CanBeSuperseded() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusPendingApproval
}
