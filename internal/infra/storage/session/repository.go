package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WizardService/pkg/psqlbuilder"
)

// Repository репозиторий сессий мастера бронирования
// Форма, снимок каталога и последний расчет хранятся в JSONB колонках
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию мастера
func (r *Repository) Create(ctx context.Context, s *domain.WizardSession) (*domain.WizardSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	formJSON, err := json.Marshal(s.Form)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal form: %v", ErrMarshal, err)
	}
	catalogJSON, err := json.Marshal(s.Catalog)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal catalog: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert("wizard_sessions").
		Columns(
			"id",
			"user_id",
			"current_step",
			"status",
			"form",
			"catalog",
			"estimate_seq",
		).
		Values(
			s.ID,
			s.UserID,
			int(s.CurrentStep),
			s.Status,
			formJSON,
			catalogJSON,
			s.EstimateSeq,
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

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает сессию по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.WizardSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"current_step",
		"status",
		"reference_code",
		"form",
		"catalog",
		"estimate",
		"estimate_seq",
		"created_at",
		"updated_at",
	).
		From("wizard_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s            domain.WizardSession
		currentStep  int
		formJSON     []byte
		catalogJSON  []byte
		estimateJSON []byte
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.UserID,
		&currentStep,
		&s.Status,
		&s.ReferenceCode,
		&formJSON,
		&catalogJSON,
		&estimateJSON,
		&s.EstimateSeq,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	s.CurrentStep = domain.Step(currentStep)

	s.Form = &domain.BookingFormState{}
	if err := json.Unmarshal(formJSON, s.Form); err != nil {
		return nil, fmt.Errorf("%w: GetByID - unmarshal form: %v", ErrScanRow, err)
	}

	s.Catalog = &domain.CatalogSnapshot{}
	if err := json.Unmarshal(catalogJSON, s.Catalog); err != nil {
		return nil, fmt.Errorf("%w: GetByID - unmarshal catalog: %v", ErrScanRow, err)
	}

	if len(estimateJSON) > 0 {
		s.LatestEstimate = &domain.PriceEstimate{}
		if err := json.Unmarshal(estimateJSON, s.LatestEstimate); err != nil {
			return nil, fmt.Errorf("%w: GetByID - unmarshal estimate: %v", ErrScanRow, err)
		}
	}

	return &s, nil
}

// UpdateForm сохраняет форму и текущий шаг сессии
func (r *Repository) UpdateForm(ctx context.Context, id string, form *domain.BookingFormState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	formJSON, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("%w: UpdateForm - marshal form: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Update("wizard_sessions").
		Set("form", formJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateForm - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateForm")
}

// UpdateStep сохраняет текущий шаг сессии
func (r *Repository) UpdateStep(ctx context.Context, id string, step domain.Step) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("wizard_sessions").
		Set("current_step", int(step)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStep - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStep")
}

// UpdateEstimate сохраняет расчет стоимости с защитой от устаревших ответов:
// запись проходит только если seq больше сохраненного estimate_seq.
// Для отклоненной устаревшей записи возвращает ErrStaleEstimate
func (r *Repository) UpdateEstimate(ctx context.Context, id string, estimate *domain.PriceEstimate, seq uint64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	estimateJSON, err := json.Marshal(estimate)
	if err != nil {
		return fmt.Errorf("%w: UpdateEstimate - marshal estimate: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Update("wizard_sessions").
		Set("estimate", estimateJSON).
		Set("estimate_seq", seq).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Lt{"estimate_seq": seq}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateEstimate - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateEstimate - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateEstimate - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		// Либо сессии нет, либо уже сохранен более новый расчет
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrStaleEstimate
	}

	return nil
}

// BindUser привязывает сессию к пользователю (аутентификация после старта мастера)
func (r *Repository) BindUser(ctx context.Context, id string, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("wizard_sessions").
		Set("user_id", userID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: BindUser - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "BindUser")
}

// MarkConfirmed переводит сессию в терминальное состояние confirmed
// с кодом подтверждения созданного бронирования
func (r *Repository) MarkConfirmed(ctx context.Context, id string, referenceCode string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("wizard_sessions").
		Set("status", domain.SessionConfirmed).
		Set("reference_code", referenceCode).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.SessionActive}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkConfirmed - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "MarkConfirmed")
}

// Delete удаляет сессию (уход клиента из мастера)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("wizard_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
