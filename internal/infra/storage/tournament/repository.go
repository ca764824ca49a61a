package tournament

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var tournamentColumns = []string{
	"id",
	"name",
	"description",
	"sport",
	"start_date",
	"end_date",
	"registration_end_date",
	"has_gold",
	"has_silver",
	"has_bronze",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с турнирами и заявками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория турниров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый турнир
func (r *Repository) Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tournaments").
		Columns(
			"name",
			"description",
			"sport",
			"start_date",
			"end_date",
			"registration_end_date",
			"has_gold",
			"has_silver",
			"has_bronze",
			"status",
		).
		Values(
			t.Name,
			t.Description,
			t.Sport,
			t.StartDate,
			t.EndDate,
			t.RegistrationEndDate,
			t.HasGold,
			t.HasSilver,
			t.HasBronze,
			t.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает турнир по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tournament, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tournamentColumns...).
		From("tournaments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTournament(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTournamentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tournament: %v", ErrScanRow, err)
	}

	return t, nil
}

// List получает все турниры в порядке дат проведения (публичная выдача)
func (r *Repository) List(ctx context.Context) ([]*domain.Tournament, error) {
	return r.list(ctx, "start_date ASC", "List")
}

// ListRecent получает все турниры, сначала недавно созданные (админ-панель)
func (r *Repository) ListRecent(ctx context.Context) ([]*domain.Tournament, error) {
	return r.list(ctx, "created_at DESC", "ListRecent")
}

func (r *Repository) list(ctx context.Context, orderBy string, method string) ([]*domain.Tournament, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tournamentColumns...).
		From("tournaments").
		OrderBy(orderBy).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	tournaments := make([]*domain.Tournament, 0)
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		tournaments = append(tournaments, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return tournaments, nil
}

// Update сохраняет все изменяемые поля турнира
// Частичное обновление применяет сервис: загружает запись, меняет поля, сохраняет
func (r *Repository) Update(ctx context.Context, t *domain.Tournament) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tournaments").
		Set("name", t.Name).
		Set("description", t.Description).
		Set("sport", t.Sport).
		Set("start_date", t.StartDate).
		Set("end_date", t.EndDate).
		Set("registration_end_date", t.RegistrationEndDate).
		Set("has_gold", t.HasGold).
		Set("has_silver", t.HasSilver).
		Set("has_bronze", t.HasBronze).
		Set("status", t.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTournamentNotFound
	}

	return nil
}

// Delete удаляет турнир (вместе с заявками - ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tournaments").
		Where(squirrel.Eq{"id": id}).
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
		return ErrTournamentNotFound
	}

	return nil
}

// CreateRegistration создает заявку пользователя в лигу турнира
// Нарушение уникальности (user, tournament, league) транслируется в ErrAlreadyRegistered
func (r *Repository) CreateRegistration(ctx context.Context, reg *domain.TournamentRegistration) (*domain.TournamentRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tournament_registrations").
		Columns("user_id", "tournament_id", "league").
		Values(reg.UserID, reg.TournamentID, reg.League).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRegistration - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reg.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, fmt.Errorf("%w: user=%d tournament=%d league=%s",
				ErrAlreadyRegistered, reg.UserID, reg.TournamentID, reg.League)
		}
		return nil, fmt.Errorf("%w: CreateRegistration - execute insert: %v", ErrExecQuery, err)
	}

	reg.CreatedAt = createdAt.Time

	return reg, nil
}

// GetRegistrationsByUser получает заявки пользователя на турниры
func (r *Repository) GetRegistrationsByUser(ctx context.Context, userID int64) ([]*domain.TournamentRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "tournament_id", "league", "created_at").
		From("tournament_registrations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRegistrationsByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRegistrationsByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	regs := make([]*domain.TournamentRegistration, 0)
	for rows.Next() {
		var reg domain.TournamentRegistration
		var createdAt sql.NullTime

		err := rows.Scan(&reg.ID, &reg.UserID, &reg.TournamentID, &reg.League, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRegistrationsByUser - scan row: %v", ErrScanRow, err)
		}

		reg.CreatedAt = createdAt.Time
		regs = append(regs, &reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRegistrationsByUser - rows error: %v", ErrScanRow, err)
	}

	return regs, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTournament(row rowScanner) (*domain.Tournament, error) {
	var t domain.Tournament
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.Sport,
		&t.StartDate,
		&t.EndDate,
		&t.RegistrationEndDate,
		&t.HasGold,
		&t.HasSilver,
		&t.HasBronze,
		&t.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
