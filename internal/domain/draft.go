package domain

import "time"

// DraftStatus represents the lifecycle state of a draft
type DraftStatus string

const (
	DraftStatusInProgress DraftStatus = "in_progress"
	DraftStatusPromoted   DraftStatus = "promoted"
	DraftStatusDiscarded  DraftStatus = "discarded"
)

// Pet is the denormalized pet snapshot stored on a draft or booking
type Pet struct {
	PetID   int64
	Name    string
	Species string
	Breed   string
}

// Draft is an uncommitted, in-progress edit to a booking's
// pets/service/occurrences/pricing. At most one active draft exists per
// (professional, client) pair; creating a new one deletes prior drafts for
// that pair. A draft is destroyed when promoted into a confirmed booking
// or explicitly discarded.
type Draft struct {
	DraftID        string // uuid
	ProfessionalID int64
	ClientID       int64
	Status         DraftStatus

	ServiceID   int64
	ServiceName string

	// Draft-level overrides applied on top of the service rate definition
	Overrides RateOverrides

	// AdditionalRateToggles keyed by "<title>_start-<suffix>".
	// Applies toggles survive occurrence regeneration.
	AdditionalRateToggles map[string]RateToggle

	Pets        []Pet
	Occurrences []Occurrence
	CostSummary *CostSummary

	// Version is bumped on every write; concurrent edits to the same draft
	// fail with a version conflict instead of losing updates
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the draft can still be edited
func (d *Draft) IsActive() bool {
	return d.Status == DraftStatusInProgress
}

// NumPets returns the pet count used for additional-animal pricing
func (d *Draft) NumPets() int {
	return len(d.Pets)
}

// IsOwnedBy returns true if the user is one of the two parties of the draft
func (d *Draft) IsOwnedBy(userID int64) bool {
	return d.ProfessionalID == userID || d.ClientID == userID
}
