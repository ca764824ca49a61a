package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

var paymentColumns = []string{
	"id",
	"user_id",
	"court_id",
	"sport",
	"booking_date",
	"slots",
	"total_amount",
	"status",
	"mp_preference_id",
	"mp_payment_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с ожидающими платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает ожидающий платеж в статусе PENDING
// Список слотов сериализуется в JSON ("HH:MM" строки)
func (r *Repository) Create(ctx context.Context, payment *domain.PendingPayment) (*domain.PendingPayment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slots, err := json.Marshal(payment.Slots)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal slots: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("pending_payments").
		Columns(
			"user_id",
			"court_id",
			"sport",
			"booking_date",
			"slots",
			"total_amount",
			"status",
		).
		Values(
			payment.UserID,
			payment.CourtID,
			payment.Sport,
			payment.Date,
			string(slots),
			payment.TotalAmount,
			payment.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time
	payment.UpdatedAt = updatedAt.Time

	return payment, nil
}

// GetByID получает ожидающий платеж по ID
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы параллельные
// webhook-и для одного платежа сериализовались
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PendingPayment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(paymentColumns...).
		From("pending_payments").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var payment domain.PendingPayment
	var slotsRaw string
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.CourtID,
		&payment.Sport,
		&payment.Date,
		&slotsRaw,
		&payment.TotalAmount,
		&payment.Status,
		&payment.MPPreferenceID,
		&payment.MPPaymentID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan payment: %v", ErrScanRow, err)
	}

	var slots []types.TimeString
	if err := json.Unmarshal([]byte(slotsRaw), &slots); err != nil {
		return nil, fmt.Errorf("%w: GetByID - unmarshal slots: %v", ErrScanRow, err)
	}
	payment.Slots = slots

	payment.CreatedAt = createdAt.Time
	payment.UpdatedAt = updatedAt.Time

	return &payment, nil
}

// SetPreferenceID сохраняет ID preference, выданный платежным процессором
func (r *Repository) SetPreferenceID(ctx context.Context, id int64, preferenceID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pending_payments").
		Set("mp_preference_id", preferenceID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPreferenceID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPreferenceID - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "SetPreferenceID")
}

// MarkApproved переводит платеж PENDING -> APPROVED, сохраняя ID платежа процессора
// Переход возможен только из PENDING - повторный webhook получает ErrNotPending
func (r *Repository) MarkApproved(ctx context.Context, id int64, mpPaymentID string) error {
	return r.transition(ctx, id, domain.PaymentApproved, &mpPaymentID, "MarkApproved")
}

// MarkRejected переводит платеж PENDING -> REJECTED (терминальное состояние)
func (r *Repository) MarkRejected(ctx context.Context, id int64) error {
	return r.transition(ctx, id, domain.PaymentRejected, nil, "MarkRejected")
}

// transition выполняет переход из PENDING в терминальное состояние
// Условие status = 'PENDING' в WHERE делает переход идемпотентным:
// повторная попытка не затрагивает строку и возвращает ErrNotPending
func (r *Repository) transition(ctx context.Context, id int64, to domain.PaymentStatus, mpPaymentID *string, method string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("pending_payments").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.PaymentPending})

	if mpPaymentID != nil {
		updateBuilder = updateBuilder.Set("mp_payment_id", *mpPaymentID)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, method, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrNotPending
	}

	return nil
}

func checkAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
