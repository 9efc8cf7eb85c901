package update_draft_rates

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
	"github.com/vlkhvnn/PCM-PricingService/pkg/types"
)

const groomingKey = "Grooming_start-ab12ef"

type fakeDraftRepo struct {
	draft   *domain.Draft
	updated *domain.Draft
}

func (f *fakeDraftRepo) GetByID(_ context.Context, draftID string) (*domain.Draft, error) {
	if f.draft == nil || f.draft.DraftID != draftID {
		return nil, draftRepo.ErrDraftNotFound
	}
	return f.draft, nil
}

func (f *fakeDraftRepo) UpdateWithVersion(_ context.Context, d *domain.Draft) error {
	f.updated = d
	return nil
}

type fakeProClient struct {
	service *proservice.Service
}

func (f *fakeProClient) GetService(_ context.Context, _, _ int64) (*proservice.Service, error) {
	if f.service == nil {
		return nil, proservice.ErrServiceNotFound
	}
	return f.service, nil
}

type fakeCosting struct{}

func (fakeCosting) SummarizeBooking(_ context.Context, _ []domain.Occurrence, _ *int64, _ int64) (*domain.CostSummary, error) {
	return &domain.CostSummary{}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

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

// testDraft черновик с одним суточным occurrence и включённой услугой Grooming
func testDraft() *domain.Draft {
	schedule := testService().ToRateSchedule()
	return &domain.Draft{
		DraftID:        "d-1",
		ProfessionalID: 100,
		ClientID:       200,
		Status:         domain.DraftStatusInProgress,
		ServiceID:      7,
		Pets:           []domain.Pet{{PetID: 1, Name: "Rex"}},
		Version:        3,
		AdditionalRateToggles: map[string]domain.RateToggle{
			groomingKey: {Applies: true, Amount: decimal.RequireFromString("25")},
		},
		Occurrences: []domain.Occurrence{
			{
				OccurrenceID: "draft_1_0",
				StartDate:    date(2026, 7, 1),
				EndDate:      date(2026, 7, 2),
				StartTime:    types.TimeString("09:00"),
				EndTime:      types.TimeString("09:00"),
				Rates:        schedule,
			},
		},
	}
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *fakeDraftRepo) *UseCase {
	return NewUseCase(repo, &fakeProClient{service: testService()}, fakeCosting{}, fakeTxManager{}, nopLogger{})
}

func TestExecuteMalformedCustomRatePricedAsZero(t *testing.T) {
	t.Parallel()

	repo := &fakeDraftRepo{draft: testDraft()}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		DraftID: "d-1",
		UserID:  200,
		CustomRates: []CustomRateInput{
			{Title: "Beach trip", Amount: "$1O.50"},
			{Title: "Late pickup", Amount: "5.00"},
		},
	})
	require.NoError(t, err, "a malformed amount must not abort the edit")
	require.Len(t, resp.Warnings, 1)
	require.Contains(t, resp.Warnings[0], "Beach trip")

	occ := resp.Draft.Occurrences[0]
	require.True(t, occ.Rates.HasRateTitle("Beach trip"), "malformed rate is still added")
	require.True(t, occ.Rates.HasRateTitle("Late pickup"))
	for _, ar := range occ.Rates.AdditionalRates {
		if ar.Title == "Beach trip" {
			require.True(t, ar.Amount.IsZero(), "malformed amount is priced as zero")
		}
	}

	// base 100 + Grooming 25 + Beach trip 0 + Late pickup 5
	require.Equal(t, "130", occ.CalculatedCost.String())
	require.NotNil(t, repo.updated)
}

func TestExecuteToggleOffRemovesRateEverywhere(t *testing.T) {
	t.Parallel()

	repo := &fakeDraftRepo{draft: testDraft()}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		DraftID: "d-1",
		UserID:  200,
		Toggles: map[string]bool{groomingKey: false},
	})
	require.NoError(t, err)

	occ := resp.Draft.Occurrences[0]
	require.False(t, occ.Rates.HasRateTitle("Grooming"))
	require.Equal(t, "100", occ.CalculatedCost.String(), "base only after the toggle")

	// Выбор пользователя пережил пересборку карты под тем же ключом
	toggle, ok := resp.Draft.AdditionalRateToggles[groomingKey]
	require.True(t, ok)
	require.False(t, toggle.Applies)
}

func TestExecuteToggleOnAddsRateEverywhere(t *testing.T) {
	t.Parallel()

	d := testDraft()
	d.Occurrences[0].Rates.AdditionalRates = nil
	d.AdditionalRateToggles[groomingKey] = domain.RateToggle{Applies: false, Amount: decimal.RequireFromString("25")}
	repo := &fakeDraftRepo{draft: d}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		DraftID: "d-1",
		UserID:  200,
		Toggles: map[string]bool{groomingKey: true},
	})
	require.NoError(t, err)

	occ := resp.Draft.Occurrences[0]
	require.True(t, occ.Rates.HasRateTitle("Grooming"))
	require.Equal(t, "125", occ.CalculatedCost.String())
	require.True(t, resp.Draft.AdditionalRateToggles[groomingKey].Applies)
}

func TestExecuteUnknownToggleKey(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeDraftRepo{draft: testDraft()})

	_, err := uc.Execute(context.Background(), &Request{
		DraftID: "d-1",
		UserID:  200,
		Toggles: map[string]bool{"Sauna_start-000000": true},
	})
	require.ErrorIs(t, err, ErrUnknownToggle)
}

func TestExecuteBaseRateOverride(t *testing.T) {
	t.Parallel()

	repo := &fakeDraftRepo{draft: testDraft()}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		DraftID:   "d-1",
		UserID:    200,
		Overrides: &OverridesInput{BaseRate: "150"},
	})
	require.NoError(t, err)
	require.Empty(t, resp.Warnings)

	occ := resp.Draft.Occurrences[0]
	require.Equal(t, "150", occ.BaseTotal.String())
	require.Equal(t, "175", occ.CalculatedCost.String(), "override base 150 + Grooming 25")
	require.NotNil(t, resp.Draft.Overrides.BaseRate)
}

func TestExecuteMalformedOverrideKeepsServiceValue(t *testing.T) {
	t.Parallel()

	repo := &fakeDraftRepo{draft: testDraft()}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		DraftID:   "d-1",
		UserID:    200,
		Overrides: &OverridesInput{BaseRate: "$1O.50"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)

	require.Nil(t, resp.Draft.Overrides.BaseRate, "malformed override is dropped")
	require.Equal(t, "125", resp.Draft.Occurrences[0].CalculatedCost.String())
}

func TestExecuteInvalidOverrides(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeDraftRepo{draft: testDraft()})

	negative := -1
	_, err := uc.Execute(context.Background(), &Request{
		DraftID:   "d-1",
		UserID:    200,
		Overrides: &OverridesInput{AppliesAfter: &negative},
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		DraftID:   "d-1",
		UserID:    200,
		Overrides: &OverridesInput{UnitOfTime: "PER_FORTNIGHT"},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteNothingToUpdate(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeDraftRepo{draft: testDraft()})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "d-1", UserID: 200})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecutePetsUpdateChangesAnimalCharge(t *testing.T) {
	t.Parallel()

	repo := &fakeDraftRepo{draft: testDraft()}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		DraftID: "d-1",
		UserID:  200,
		Pets: []PetInput{
			{PetID: 1, Name: "Rex"},
			{PetID: 2, Name: "Tom"},
			{PetID: 3, Name: "Kiwi"},
		},
	})
	require.NoError(t, err)

	occ := resp.Draft.Occurrences[0]
	// 2 животных сверх порога по 20 за сутки
	require.Equal(t, "40", occ.AdditionalAnimalTotal.String())
	require.Equal(t, "165", occ.CalculatedCost.String())
}

func TestExecuteCustomRateKeyAddedToToggles(t *testing.T) {
	t.Parallel()

	repo := &fakeDraftRepo{draft: testDraft()}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		DraftID:     "d-1",
		UserID:      200,
		CustomRates: []CustomRateInput{{Title: "Late pickup", Amount: "5.00"}},
	})
	require.NoError(t, err)

	var found bool
	for key, toggle := range resp.Draft.AdditionalRateToggles {
		if strings.HasPrefix(key, "Late pickup_start-") {
			found = true
			require.True(t, toggle.Applies, "rate added to every occurrence applies")
		}
	}
	require.True(t, found, "ad hoc rate must get a toggle entry")
}
