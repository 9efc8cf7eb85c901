package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	"github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/jsondoc"
	"github.com/vlkhvnn/PCM-PricingService/pkg/dbmetrics"
	"github.com/vlkhvnn/PCM-PricingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с подтверждёнными бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// NextOccurrenceIDs выделяет n постоянных идентификаторов occurrences
// из последовательности. Используется при промоушене черновика, чтобы
// синтетические draft_* идентификаторы заменить на постоянные
func (r *Repository) NextOccurrenceIDs(ctx context.Context, n int) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx,
		"SELECT nextval('booking_occurrence_id_seq') FROM generate_series(1, $1)", n)
	if err != nil {
		return nil, fmt.Errorf("%w: NextOccurrenceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0, n)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: NextOccurrenceIDs - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: NextOccurrenceIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// Create создает подтверждённое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	petsDoc, err := json.Marshal(jsondoc.FromDomainPets(booking.Pets))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal pets: %v", ErrMarshalDoc, err)
	}
	occurrencesDoc, err := json.Marshal(jsondoc.FromDomainOccurrences(booking.Occurrences))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal occurrences: %v", ErrMarshalDoc, err)
	}
	summaryDoc, err := json.Marshal(jsondoc.FromDomainSummary(booking.CostSummary))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal cost summary: %v", ErrMarshalDoc, err)
	}

	query, args, err := psqlbuilder.Insert("confirmed_bookings").
		Columns(
			"professional_id",
			"client_id",
			"status",
			"service_id",
			"service_name",
			"pets",
			"occurrences",
			"cost_summary",
			"promoted_from_draft_id",
			"requires_approval",
		).
		Values(
			booking.ProfessionalID,
			booking.ClientID,
			booking.Status,
			booking.ServiceID,
			booking.ServiceName,
			petsDoc,
			occurrencesDoc,
			summaryDoc,
			booking.PromotedFromDraftID,
			booking.RequiresApproval,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookingColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetActiveByPair получает последнее активное бронирование пары
// (профессионал, клиент). Используется при промоушене черновика для
// сравнения с предыдущим подтверждённым состоянием
func (r *Repository) GetActiveByPair(ctx context.Context, professionalID, clientID int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookingColumns().
		Where(squirrel.Eq{"professional_id": professionalID, "client_id": clientID}).
		Where(squirrel.NotEq{"status": string(domain.BookingStatusCancelled)}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPair - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPair - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// SetStatus обновляет статус бронирования
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("confirmed_bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func selectBookingColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"professional_id",
		"client_id",
		"status",
		"service_id",
		"service_name",
		"pets",
		"occurrences",
		"cost_summary",
		"promoted_from_draft_id",
		"requires_approval",
		"created_at",
		"updated_at",
	).From("confirmed_bookings")
}

// scanBooking сканирует строку в доменную модель бронирования
func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var petsDoc, occurrencesDoc, summaryDoc []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ProfessionalID,
		&booking.ClientID,
		&booking.Status,
		&booking.ServiceID,
		&booking.ServiceName,
		&petsDoc,
		&occurrencesDoc,
		&summaryDoc,
		&booking.PromotedFromDraftID,
		&booking.RequiresApproval,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	var pets []jsondoc.Pet
	if err := json.Unmarshal(petsDoc, &pets); err != nil {
		return nil, fmt.Errorf("%w: pets: %v", ErrUnmarshalDoc, err)
	}
	booking.Pets = jsondoc.ToDomainPets(pets)

	var occurrences []jsondoc.Occurrence
	if err := json.Unmarshal(occurrencesDoc, &occurrences); err != nil {
		return nil, fmt.Errorf("%w: occurrences: %v", ErrUnmarshalDoc, err)
	}
	booking.Occurrences, err = jsondoc.ToDomainOccurrences(occurrences)
	if err != nil {
		return nil, fmt.Errorf("%w: occurrences: %v", ErrUnmarshalDoc, err)
	}

	var summary *jsondoc.CostSummary
	if err := json.Unmarshal(summaryDoc, &summary); err != nil {
		return nil, fmt.Errorf("%w: cost summary: %v", ErrUnmarshalDoc, err)
	}
	booking.CostSummary = jsondoc.ToDomainSummary(summary)

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
