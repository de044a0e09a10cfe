package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/pkg/dbmetrics"
	"github.com/quesarica/QR-BookingService/pkg/psqlbuilder"
)

// Единственная строка настроек хранится под фиксированным id
const settingsRowID = 1

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с настройками политики бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает настройки. Если строка еще не создана, возвращает
// значения по умолчанию: дефолты разрешаются здесь один раз, а не
// размазываются по местам вызова.
func (r *Repository) Get(ctx context.Context) (domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"max_events_per_day",
		"min_notice_days",
		"reminder_days",
		"free_cancellation_days",
		"cancellation_fee_type",
		"cancellation_fee_flat",
		"cancellation_fee_percent",
		"noshow_fee_type",
		"noshow_fee_flat",
		"noshow_fee_percent",
		"cc_surcharge_percent",
		"cash_deposit_percent",
		"stripe_fee_percent",
		"stripe_fee_flat_cents",
		"notify_email",
		"notify_phone",
		"updated_at",
	).
		From("settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return domain.Settings{}, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.MaxEventsPerDay,
		&s.MinNoticeDays,
		&s.ReminderDays,
		&s.FreeCancellationDays,
		&s.CancellationFeeType,
		&s.CancellationFeeFlat,
		&s.CancellationFeePercent,
		&s.NoShowFeeType,
		&s.NoShowFeeFlat,
		&s.NoShowFeePercent,
		&s.CCSurchargePercent,
		&s.CashDepositPercent,
		&s.StripeFeePercent,
		&s.StripeFeeFlatCents,
		&s.NotifyEmail,
		&s.NotifyPhone,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// Update сохраняет настройки (upsert единственной строки)
func (r *Repository) Update(ctx context.Context, s domain.Settings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("settings").
		Columns(
			"id",
			"max_events_per_day",
			"min_notice_days",
			"reminder_days",
			"free_cancellation_days",
			"cancellation_fee_type",
			"cancellation_fee_flat",
			"cancellation_fee_percent",
			"noshow_fee_type",
			"noshow_fee_flat",
			"noshow_fee_percent",
			"cc_surcharge_percent",
			"cash_deposit_percent",
			"stripe_fee_percent",
			"stripe_fee_flat_cents",
			"notify_email",
			"notify_phone",
		).
		Values(
			settingsRowID,
			s.MaxEventsPerDay,
			s.MinNoticeDays,
			s.ReminderDays,
			s.FreeCancellationDays,
			s.CancellationFeeType,
			s.CancellationFeeFlat,
			s.CancellationFeePercent,
			s.NoShowFeeType,
			s.NoShowFeeFlat,
			s.NoShowFeePercent,
			s.CCSurchargePercent,
			s.CashDepositPercent,
			s.StripeFeePercent,
			s.StripeFeeFlatCents,
			s.NotifyEmail,
			s.NotifyPhone,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			max_events_per_day = EXCLUDED.max_events_per_day,
			min_notice_days = EXCLUDED.min_notice_days,
			reminder_days = EXCLUDED.reminder_days,
			free_cancellation_days = EXCLUDED.free_cancellation_days,
			cancellation_fee_type = EXCLUDED.cancellation_fee_type,
			cancellation_fee_flat = EXCLUDED.cancellation_fee_flat,
			cancellation_fee_percent = EXCLUDED.cancellation_fee_percent,
			noshow_fee_type = EXCLUDED.noshow_fee_type,
			noshow_fee_flat = EXCLUDED.noshow_fee_flat,
			noshow_fee_percent = EXCLUDED.noshow_fee_percent,
			cc_surcharge_percent = EXCLUDED.cc_surcharge_percent,
			cash_deposit_percent = EXCLUDED.cash_deposit_percent,
			stripe_fee_percent = EXCLUDED.stripe_fee_percent,
			stripe_fee_flat_cents = EXCLUDED.stripe_fee_flat_cents,
			notify_email = EXCLUDED.notify_email,
			notify_phone = EXCLUDED.notify_phone,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Update - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
