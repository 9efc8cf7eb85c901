package update_draft_dates

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	draftRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/draft"
	"github.com/vlkhvnn/PCM-PricingService/internal/integrations/proservice"
)

type fakeDraftRepo struct {
	draft     *domain.Draft
	getErr    error
	updateErr error
	updated   *domain.Draft
}

func (f *fakeDraftRepo) GetByID(_ context.Context, draftID string) (*domain.Draft, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.draft == nil || f.draft.DraftID != draftID {
		return nil, draftRepo.ErrDraftNotFound
	}
	return f.draft, nil
}

func (f *fakeDraftRepo) UpdateWithVersion(_ context.Context, d *domain.Draft) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = d
	return nil
}

type fakeProClient struct {
	service *proservice.Service
	err     error
}

func (f *fakeProClient) GetService(_ context.Context, _, _ int64) (*proservice.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeCosting struct {
	summary *domain.CostSummary
	err     error
	calls   int
}

func (f *fakeCosting) SummarizeBooking(_ context.Context, _ []domain.Occurrence, _ *int64, _ int64) (*domain.CostSummary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// retryTxManager прогоняет транзакцию дважды, имитируя ретрай после
// serialization failure (40001)
type retryTxManager struct{ attempts int }

func (m *retryTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.attempts++
	if err := fn(ctx); err != nil {
		return err
	}
	m.attempts++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func testService() *proservice.Service {
	return &proservice.Service{
		ID:                   7,
		ProfessionalID:       100,
		Name:                 "Dog Boarding",
		UnitOfTime:           string(domain.UnitPerDay),
		BaseRate:             decimal.RequireFromString("100"),
		AdditionalAnimalRate: decimal.RequireFromString("20"),
		AppliesAfter:         1,
		AdditionalRates: []proservice.AdditionalRate{
			{Title: "Grooming", Amount: decimal.RequireFromString("25")},
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
		Version:        3,
	}
}

func newTestUseCase(repo *fakeDraftRepo, pro *fakeProClient, costing *fakeCosting) *UseCase {
	uc := NewUseCase(repo, pro, costing, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{at: time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecuteRecalculatesDraft(t *testing.T) {
	t.Parallel()

	repo := &fakeDraftRepo{draft: testDraft()}
	costing := &fakeCosting{summary: &domain.CostSummary{}}
	uc := newTestUseCase(repo, &fakeProClient{service: testService()}, costing)

	resp, err := uc.Execute(context.Background(), &Request{
		DraftID: "d-1",
		UserID:  200,
		Dates: []DateRow{
			{Date: "2026-07-01", StartTime: "09:00", EndTime: "17:00"},
		},
	})
	require.NoError(t, err)
	require.Empty(t, resp.Warnings)

	require.NotNil(t, repo.updated, "draft must be persisted")
	require.Len(t, resp.Draft.Occurrences, 1)
	occ := resp.Draft.Occurrences[0]
	require.True(t, strings.HasPrefix(occ.OccurrenceID, "draft_"))
	require.True(t, occ.CalculatedCost.IsPositive())

	// Переключатели пересобраны из определения услуги
	require.Len(t, resp.Draft.AdditionalRateToggles, 1)

	require.Equal(t, 1, costing.calls)
	require.Same(t, costing.summary, resp.Draft.CostSummary)
}

func TestExecuteSkipsIncompleteRowsWithWarning(t *testing.T) {
	t.Parallel()

	repo := &fakeDraftRepo{draft: testDraft()}
	uc := newTestUseCase(repo, &fakeProClient{service: testService()}, &fakeCosting{summary: &domain.CostSummary{}})

	resp, err := uc.Execute(context.Background(), &Request{
		DraftID: "d-1",
		UserID:  200,
		Dates: []DateRow{
			{Date: "2026-07-01", StartTime: "09:00", EndTime: "17:00"},
			{Date: "2026-07-02", StartTime: "", EndTime: "17:00"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1, "incomplete row is skipped, not fatal")
	require.Len(t, resp.Draft.Occurrences, 1)
}

func TestExecuteRetryDoesNotDuplicateWarnings(t *testing.T) {
	t.Parallel()

	repo := &fakeDraftRepo{draft: testDraft()}
	tx := &retryTxManager{}
	uc := NewUseCase(repo, &fakeProClient{service: testService()}, &fakeCosting{summary: &domain.CostSummary{}}, tx, nopLogger{})
	uc.timeProvider = fixedClock{at: time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		DraftID: "d-1",
		UserID:  200,
		Dates: []DateRow{
			{Date: "2026-07-01", StartTime: "09:00", EndTime: "17:00"},
			{Date: "", StartTime: "09:00", EndTime: "17:00"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, tx.attempts)

	// Повторный прогон транзакции не задваивает ни occurrences, ни предупреждения
	require.Len(t, resp.Draft.Occurrences, 1)
	require.Len(t, resp.Warnings, 1)
}

func TestExecuteDraftNotFound(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeDraftRepo{}, &fakeProClient{service: testService()}, &fakeCosting{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "missing", UserID: 200, Dates: []DateRow{}})
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestExecuteAccessDenied(t *testing.T) {
	t.Parallel()

	repo := &fakeDraftRepo{draft: testDraft()}
	uc := newTestUseCase(repo, &fakeProClient{service: testService()}, &fakeCosting{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 999, Dates: []DateRow{}})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecuteDraftNotEditable(t *testing.T) {
	t.Parallel()

	d := testDraft()
	d.Status = domain.DraftStatusPromoted
	uc := newTestUseCase(&fakeDraftRepo{draft: d}, &fakeProClient{service: testService()}, &fakeCosting{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200, Dates: []DateRow{}})
	require.ErrorIs(t, err, ErrDraftNotEditable)
}

func TestExecuteVersionConflictPrecheck(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeDraftRepo{draft: testDraft()}, &fakeProClient{service: testService()}, &fakeCosting{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200, Version: 1, Dates: []DateRow{}})
	require.ErrorIs(t, err, ErrVersionConflict)
}

func TestExecuteVersionConflictOnSave(t *testing.T) {
	t.Parallel()

	repo := &fakeDraftRepo{draft: testDraft(), updateErr: draftRepo.ErrVersionConflict}
	uc := newTestUseCase(repo, &fakeProClient{service: testService()}, &fakeCosting{summary: &domain.CostSummary{}})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200, Dates: []DateRow{}})
	require.ErrorIs(t, err, ErrVersionConflict)
}

func TestExecuteServiceNotFound(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeDraftRepo{draft: testDraft()}, &fakeProClient{err: proservice.ErrServiceNotFound}, &fakeCosting{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200, Dates: []DateRow{}})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecuteInvalidInput(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeDraftRepo{draft: testDraft()}, &fakeProClient{service: testService()}, &fakeCosting{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200, Dates: nil})
	require.ErrorIs(t, err, ErrInvalidInput, "missing dates list")

	_, err = uc.Execute(context.Background(), &Request{
		DraftID: "d-1",
		UserID:  200,
		Dates:   []DateRow{{Date: "07/01/2026", StartTime: "09:00", EndTime: "17:00"}},
	})
	require.ErrorIs(t, err, ErrInvalidInput, "unparsable date")

	_, err = uc.Execute(context.Background(), &Request{
		DraftID: "d-1",
		UserID:  200,
		Dates:   []DateRow{{Date: "2026-07-02", EndDate: "2026-07-01", StartTime: "09:00", EndTime: "17:00"}},
	})
	require.ErrorIs(t, err, ErrInvalidInput, "explicit end date before start date")
}
