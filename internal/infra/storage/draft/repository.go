package draft

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

// Repository репозиторий для работы с черновиками бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый черновик
// Вызывающий код обязан сначала удалить прежние активные черновики пары
// через DeleteActiveByPair (не больше одного активного черновика на пару)
func (r *Repository) Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	docs, err := marshalDraftDocs(d)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("pricing_drafts").
		Columns(
			"draft_id",
			"professional_id",
			"client_id",
			"status",
			"service_id",
			"service_name",
			"overrides",
			"rate_toggles",
			"pets",
			"occurrences",
			"cost_summary",
			"version",
		).
		Values(
			d.DraftID,
			d.ProfessionalID,
			d.ClientID,
			d.Status,
			d.ServiceID,
			d.ServiceName,
			docs.overrides,
			docs.toggles,
			docs.pets,
			docs.occurrences,
			docs.summary,
			1,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.Version = 1
	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetByID получает черновик по ID
// Если запрос выполняется в транзакции, строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, draftID string) (*domain.Draft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectDraftColumns().
		Where(squirrel.Eq{"draft_id": draftID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	d, err := scanDraft(row)
	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan draft: %v", ErrScanRow, err)
	}

	return d, nil
}

// GetActiveByPair получает активный черновик пары (профессионал, клиент)
func (r *Repository) GetActiveByPair(ctx context.Context, professionalID, clientID int64) (*domain.Draft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectDraftColumns().
		Where(squirrel.Eq{
			"professional_id": professionalID,
			"client_id":       clientID,
			"status":          string(domain.DraftStatusInProgress),
		}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPair - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	d, err := scanDraft(row)
	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPair - scan draft: %v", ErrScanRow, err)
	}

	return d, nil
}

// UpdateWithVersion сохраняет черновик с оптимистичной проверкой версии.
// Запись проходит только если версия в БД равна d.Version; при успехе
// версия увеличивается на единицу (и в БД, и в переданной модели).
// Конкурентная правка того же черновика получает ErrVersionConflict
func (r *Repository) UpdateWithVersion(ctx context.Context, d *domain.Draft) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	docs, err := marshalDraftDocs(d)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("pricing_drafts").
		Set("status", d.Status).
		Set("service_id", d.ServiceID).
		Set("service_name", d.ServiceName).
		Set("overrides", docs.overrides).
		Set("rate_toggles", docs.toggles).
		Set("pets", docs.pets).
		Set("occurrences", docs.occurrences).
		Set("cost_summary", docs.summary).
		Set("version", d.Version+1).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"draft_id": d.DraftID, "version": d.Version}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWithVersion - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWithVersion - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWithVersion - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо черновика нет, либо версия ушла вперёд - различаем чтением
		if _, getErr := r.GetByID(ctx, d.DraftID); getErr != nil {
			return ErrDraftNotFound
		}
		return ErrVersionConflict
	}

	d.Version++
	return nil
}

// SetStatus обновляет статус черновика (promoted / discarded)
func (r *Repository) SetStatus(ctx context.Context, draftID string, status domain.DraftStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pricing_drafts").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"draft_id": draftID}).
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
		return ErrDraftNotFound
	}

	return nil
}

// DeleteActiveByPair удаляет активные черновики пары (профессионал, клиент)
// Возвращает количество удалённых черновиков
func (r *Repository) DeleteActiveByPair(ctx context.Context, professionalID, clientID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_drafts").
		Where(squirrel.Eq{
			"professional_id": professionalID,
			"client_id":       clientID,
			"status":          string(domain.DraftStatusInProgress),
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteActiveByPair - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteActiveByPair - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteActiveByPair - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// Delete удаляет черновик по ID
func (r *Repository) Delete(ctx context.Context, draftID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_drafts").
		Where(squirrel.Eq{"draft_id": draftID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

// draftDocs сериализованные JSONB документы черновика
type draftDocs struct {
	overrides   []byte
	toggles     []byte
	pets        []byte
	occurrences []byte
	summary     []byte
}

func marshalDraftDocs(d *domain.Draft) (*draftDocs, error) {
	overrides, err := json.Marshal(jsondoc.FromDomainOverrides(d.Overrides))
	if err != nil {
		return nil, fmt.Errorf("%w: overrides: %v", ErrMarshalDoc, err)
	}
	toggles, err := json.Marshal(jsondoc.FromDomainToggles(d.AdditionalRateToggles))
	if err != nil {
		return nil, fmt.Errorf("%w: rate toggles: %v", ErrMarshalDoc, err)
	}
	pets, err := json.Marshal(jsondoc.FromDomainPets(d.Pets))
	if err != nil {
		return nil, fmt.Errorf("%w: pets: %v", ErrMarshalDoc, err)
	}
	occurrences, err := json.Marshal(jsondoc.FromDomainOccurrences(d.Occurrences))
	if err != nil {
		return nil, fmt.Errorf("%w: occurrences: %v", ErrMarshalDoc, err)
	}
	summary, err := json.Marshal(jsondoc.FromDomainSummary(d.CostSummary))
	if err != nil {
		return nil, fmt.Errorf("%w: cost summary: %v", ErrMarshalDoc, err)
	}

	return &draftDocs{
		overrides:   overrides,
		toggles:     toggles,
		pets:        pets,
		occurrences: occurrences,
		summary:     summary,
	}, nil
}

func selectDraftColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"draft_id",
		"professional_id",
		"client_id",
		"status",
		"service_id",
		"service_name",
		"overrides",
		"rate_toggles",
		"pets",
		"occurrences",
		"cost_summary",
		"version",
		"created_at",
		"updated_at",
	).From("pricing_drafts")
}

// scanDraft сканирует строку в доменную модель черновика
func scanDraft(row *sql.Row) (*domain.Draft, error) {
	var d domain.Draft
	var overridesDoc, togglesDoc, petsDoc, occurrencesDoc, summaryDoc []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&d.DraftID,
		&d.ProfessionalID,
		&d.ClientID,
		&d.Status,
		&d.ServiceID,
		&d.ServiceName,
		&overridesDoc,
		&togglesDoc,
		&petsDoc,
		&occurrencesDoc,
		&summaryDoc,
		&d.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	var overrides jsondoc.RateOverrides
	if err := json.Unmarshal(overridesDoc, &overrides); err != nil {
		return nil, fmt.Errorf("%w: overrides: %v", ErrUnmarshalDoc, err)
	}
	d.Overrides = jsondoc.ToDomainOverrides(overrides)

	var toggles map[string]jsondoc.RateToggle
	if err := json.Unmarshal(togglesDoc, &toggles); err != nil {
		return nil, fmt.Errorf("%w: rate toggles: %v", ErrUnmarshalDoc, err)
	}
	d.AdditionalRateToggles = jsondoc.ToDomainToggles(toggles)

	var pets []jsondoc.Pet
	if err := json.Unmarshal(petsDoc, &pets); err != nil {
		return nil, fmt.Errorf("%w: pets: %v", ErrUnmarshalDoc, err)
	}
	d.Pets = jsondoc.ToDomainPets(pets)

	var occurrences []jsondoc.Occurrence
	if err := json.Unmarshal(occurrencesDoc, &occurrences); err != nil {
		return nil, fmt.Errorf("%w: occurrences: %v", ErrUnmarshalDoc, err)
	}
	d.Occurrences, err = jsondoc.ToDomainOccurrences(occurrences)
	if err != nil {
		return nil, fmt.Errorf("%w: occurrences: %v", ErrUnmarshalDoc, err)
	}

	var summary *jsondoc.CostSummary
	if err := json.Unmarshal(summaryDoc, &summary); err != nil {
		return nil, fmt.Errorf("%w: cost summary: %v", ErrUnmarshalDoc, err)
	}
	d.CostSummary = jsondoc.ToDomainSummary(summary)

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}
