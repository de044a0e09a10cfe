package adminsession

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/quesarica/QR-BookingService/pkg/dbmetrics"
	"github.com/quesarica/QR-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository хранилище административных сессий.
// Сессии живут в БД, а не в памяти процесса: перезапуск сервиса
// не разлогинивает владельца, и валидация работает с любого инстанса.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр хранилища сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию с временем истечения
func (r *Repository) Create(ctx context.Context, token string, expiresAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("admin_sessions").
		Columns("token", "expires_at").
		Values(token, expiresAt).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetValid возвращает время истечения действующей сессии.
// Истекшие и несуществующие сессии дают ErrSessionNotFound.
func (r *Repository) GetValid(ctx context.Context, token string) (time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("expires_at").
		From("admin_sessions").
		Where(squirrel.Eq{"token": token}).
		Where(squirrel.Expr("expires_at > NOW()")).
		ToSql()

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: GetValid - build select query: %v", ErrBuildQuery, err)
	}

	var expiresAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&expiresAt)
	if err == sql.ErrNoRows {
		return time.Time{}, ErrSessionNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: GetValid - scan session: %v", ErrExecQuery, err)
	}

	return expiresAt, nil
}

// Delete отзывает сессию
func (r *Repository) Delete(ctx context.Context, token string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("admin_sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteExpired удаляет истекшие сессии, возвращает количество удаленных
func (r *Repository) DeleteExpired(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("admin_sessions").
		Where(squirrel.Expr("expires_at <= NOW()")).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}
