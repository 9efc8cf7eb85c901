package promote_draft

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	bookingRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/booking"
	draftRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/draft"
	"github.com/vlkhvnn/PCM-PricingService/pkg/types"
)

type fakeDraftRepo struct {
	draft      *domain.Draft
	lastStatus domain.DraftStatus
}

func (f *fakeDraftRepo) GetByID(_ context.Context, draftID string) (*domain.Draft, error) {
	if f.draft == nil || f.draft.DraftID != draftID {
		return nil, draftRepo.ErrDraftNotFound
	}
	return f.draft, nil
}

func (f *fakeDraftRepo) SetStatus(_ context.Context, _ string, status domain.DraftStatus) error {
	f.lastStatus = status
	return nil
}

type fakeBookingRepo struct {
	prior           *domain.Booking
	created         *domain.Booking
	cancelledID     int64
	nextID          int64
	allocatedBlocks int
}

func (f *fakeBookingRepo) NextOccurrenceIDs(_ context.Context, n int) ([]int64, error) {
	f.allocatedBlocks++
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		f.nextID++
		ids = append(ids, f.nextID)
	}
	return ids, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 500
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetActiveByPair(_ context.Context, _, _ int64) (*domain.Booking, error) {
	if f.prior == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.prior, nil
}

func (f *fakeBookingRepo) SetStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if status == domain.BookingStatusCancelled {
		f.cancelledID = id
	}
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func occurrence(id string) domain.Occurrence {
	return domain.Occurrence{
		OccurrenceID: id,
		StartDate:    time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, time.July, 2, 0, 0, 0, 0, time.UTC),
		StartTime:    types.TimeString("09:00"),
		EndTime:      types.TimeString("09:00"),
		Rates: domain.RateSchedule{
			BaseRate:   decimal.RequireFromString("100"),
			UnitOfTime: domain.UnitPerDay,
		},
	}
}

func testDraft() *domain.Draft {
	return &domain.Draft{
		DraftID:        "d-1",
		ProfessionalID: 100,
		ClientID:       200,
		Status:         domain.DraftStatusInProgress,
		ServiceID:      7,
		ServiceName:    "Dog Boarding",
		Pets:           []domain.Pet{{PetID: 1, Name: "Rex"}},
		Occurrences:    []domain.Occurrence{occurrence("draft_1_0"), occurrence("42")},
		Version:        3,
	}
}

// priorBookingMatching подтверждённое бронирование, совпадающее с черновиком
// по всем сравниваемым полям
func priorBookingMatching(d *domain.Draft) *domain.Booking {
	return &domain.Booking{
		ID:             9,
		ProfessionalID: d.ProfessionalID,
		ClientID:       d.ClientID,
		Status:         domain.BookingStatusConfirmed,
		ServiceID:      d.ServiceID,
		ServiceName:    d.ServiceName,
		Pets:           d.Pets,
		Occurrences:    []domain.Occurrence{occurrence("41"), occurrence("42")},
	}
}

func newTestUseCase(drafts *fakeDraftRepo, bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(drafts, bookings, fakeTxManager{}, nopLogger{})
}

func TestExecuteFirstPromotionRequiresApproval(t *testing.T) {
	t.Parallel()

	drafts := &fakeDraftRepo{draft: testDraft()}
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(drafts, bookings)

	resp, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200})
	require.NoError(t, err)

	// Прежнего бронирования нет: подтверждение с нуля
	require.True(t, resp.RequiresApproval)
	require.Equal(t, domain.BookingStatusPendingApproval, resp.Booking.Status)
	require.Nil(t, resp.SupersededBookingID)
	require.Equal(t, domain.DraftStatusPromoted, drafts.lastStatus)
	require.NotNil(t, resp.Booking.PromotedFromDraftID)
	require.Equal(t, "d-1", *resp.Booking.PromotedFromDraftID)
}

func TestExecuteAssignsDurableOccurrenceIDs(t *testing.T) {
	t.Parallel()

	drafts := &fakeDraftRepo{draft: testDraft()}
	bookings := &fakeBookingRepo{nextID: 1000}
	uc := newTestUseCase(drafts, bookings)

	resp, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200})
	require.NoError(t, err)

	require.Len(t, resp.Booking.Occurrences, 2)
	require.Equal(t, "1001", resp.Booking.Occurrences[0].OccurrenceID, "synthetic id replaced from the sequence")
	require.Equal(t, "42", resp.Booking.Occurrences[1].OccurrenceID, "durable id preserved")
	require.Equal(t, 1, bookings.allocatedBlocks, "ids allocated in one batch")

	// Черновик остаётся с синтетическим идентификатором до сохранения
	require.Equal(t, "draft_1_0", drafts.draft.Occurrences[0].OccurrenceID)
}

func TestExecuteUnchangedDraftConfirmsDirectly(t *testing.T) {
	t.Parallel()

	d := testDraft()
	d.Occurrences = []domain.Occurrence{occurrence("41"), occurrence("42")}
	drafts := &fakeDraftRepo{draft: d}
	bookings := &fakeBookingRepo{prior: priorBookingMatching(d)}
	uc := newTestUseCase(drafts, bookings)

	resp, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200})
	require.NoError(t, err)

	require.False(t, resp.RequiresApproval)
	require.Equal(t, domain.BookingStatusConfirmed, resp.Booking.Status)
	require.NotNil(t, resp.SupersededBookingID)
	require.Equal(t, int64(9), *resp.SupersededBookingID)
	require.Equal(t, int64(9), bookings.cancelledID, "prior booking is cancelled")
}

func TestExecuteChangedDraftNeedsReapproval(t *testing.T) {
	t.Parallel()

	d := testDraft()
	prior := priorBookingMatching(d)
	prior.ServiceName = "Cat Boarding"
	drafts := &fakeDraftRepo{draft: d}
	bookings := &fakeBookingRepo{prior: prior}
	uc := newTestUseCase(drafts, bookings)

	resp, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200})
	require.NoError(t, err)

	require.True(t, resp.RequiresApproval)
	require.Equal(t, domain.BookingStatusPendingApproval, resp.Booking.Status)
}

func TestExecuteEmptyDraft(t *testing.T) {
	t.Parallel()

	d := testDraft()
	d.Occurrences = nil
	uc := newTestUseCase(&fakeDraftRepo{draft: d}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200})
	require.ErrorIs(t, err, ErrEmptyDraft)
}

func TestExecuteDraftNotPromotable(t *testing.T) {
	t.Parallel()

	d := testDraft()
	d.Status = domain.DraftStatusPromoted
	uc := newTestUseCase(&fakeDraftRepo{draft: d}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200})
	require.ErrorIs(t, err, ErrDraftNotPromotable)
}

func TestExecuteAccessDenied(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeDraftRepo{draft: testDraft()}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 999})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecuteVersionConflict(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeDraftRepo{draft: testDraft()}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200, Version: 1})
	require.ErrorIs(t, err, ErrVersionConflict)
}
