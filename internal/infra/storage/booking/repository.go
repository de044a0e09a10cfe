package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/pkg/dbmetrics"
	"github.com/quesarica/QR-BookingService/pkg/psqlbuilder"
)

// bookingColumns полный список колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"reference",
	"event_date",
	"event_time",
	"event_address",
	"customer_name",
	"customer_email",
	"customer_phone",
	"guest_count",
	"duration",
	"meats",
	"extras",
	"extra_flavors",
	"total_price_cents",
	"payment_method",
	"payment_status",
	"status",
	"cancel_token",
	"reschedule_token",
	"stripe_session_id",
	"stripe_customer_id",
	"stripe_payment_method_id",
	"stripe_payment_intent_id",
	"cancellation_fee_cents",
	"no_show_fee_cents",
	"refund_cents",
	"deposit_cents",
	"balance_due_cents",
	"reminder_sent",
	"created_at",
	"updated_at",
	"cancelled_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	extrasJSON, err := json.Marshal(b.Extras)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal extras: %v", ErrEncode, err)
	}
	flavorsJSON, err := json.Marshal(b.ExtraFlavors)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal extra flavors: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"event_date",
			"event_time",
			"event_address",
			"customer_name",
			"customer_email",
			"customer_phone",
			"guest_count",
			"duration",
			"meats",
			"extras",
			"extra_flavors",
			"total_price_cents",
			"payment_method",
			"payment_status",
			"status",
			"cancel_token",
			"reschedule_token",
			"stripe_session_id",
			"deposit_cents",
			"balance_due_cents",
		).
		Values(
			b.Reference,
			b.EventDate,
			b.EventTime,
			b.EventAddress,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.GuestCount,
			b.Duration,
			pq.Array(b.Meats),
			extrasJSON,
			flavorsJSON,
			b.TotalPriceCents,
			b.PaymentMethod,
			b.PaymentStatus,
			b.Status,
			b.CancelToken,
			b.RescheduleToken,
			b.StripeSessionID,
			b.DepositCents,
			b.BalanceDueCents,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByCancelToken получает бронирование по токену отмены
func (r *Repository) GetByCancelToken(ctx context.Context, token string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"cancel_token": token}, "GetByCancelToken")
}

// GetByRescheduleToken получает бронирование по токену переноса
func (r *Repository) GetByRescheduleToken(ctx context.Context, token string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"reschedule_token": token}, "GetByRescheduleToken")
}

// GetByToken получает бронирование по любому из токенов самообслуживания.
// Используется страницей управления бронированием.
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Or{
		squirrel.Eq{"cancel_token": token},
		squirrel.Eq{"reschedule_token": token},
	}, "GetByToken")
}

// GetBySessionID получает бронирование по идентификатору платежной сессии.
// Используется обработчиком вебхука платежного провайдера.
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"stripe_session_id": sessionID}, "GetBySessionID")
}

func (r *Repository) getOne(ctx context.Context, where interface{}, op string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// List получает бронирования с фильтрацией по статусу и периоду
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"event_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"event_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	selectBuilder = selectBuilder.OrderBy("event_date ASC, created_at ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountActiveByDate считает неотмененные бронирования по датам в периоде.
// Ключи результата: даты в формате YYYY-MM-DD.
func (r *Repository) CountActiveByDate(ctx context.Context, from, to time.Time) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("event_date", "COUNT(*)").
		From("bookings").
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.GtOrEq{"event_date": from}).
		Where(squirrel.LtOrEq{"event_date": to}).
		GroupBy("event_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("%w: CountActiveByDate - scan row: %v", ErrScanRow, err)
		}
		counts[date.Format(domain.DateFormat)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountActiveByDate - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// ConfirmPayment переводит бронирование в confirmed после подтверждения
// оплаты: статусы, токены самообслуживания и ссылки платежного провайдера
func (r *Repository) ConfirmPayment(
	ctx context.Context,
	id int64,
	paymentStatus domain.PaymentStatus,
	cancelToken, rescheduleToken string,
	stripeCustomerID, stripePaymentMethodID, stripePaymentIntentID *string,
) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("payment_status", paymentStatus).
		Set("cancel_token", cancelToken).
		Set("reschedule_token", rescheduleToken).
		Set("stripe_customer_id", stripeCustomerID).
		Set("stripe_payment_method_id", stripePaymentMethodID).
		Set("stripe_payment_intent_id", stripePaymentIntentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ConfirmPayment - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, "ConfirmPayment")
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, "UpdateStatus")
}

// Cancel отменяет бронирование: фиксирует штраф и возврат, очищает токены
// самообслуживания и ставит отметку времени отмены
func (r *Repository) Cancel(ctx context.Context, id int64, feeCents, refundCents int64) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_fee_cents", feeCents).
		Set("refund_cents", refundCents).
		Set("cancel_token", "").
		Set("reschedule_token", "").
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, "Cancel")
}

// Reschedule переносит бронирование на новую дату: ротирует оба токена
// и сбрасывает флаг отправленного напоминания
func (r *Repository) Reschedule(ctx context.Context, id int64, newDate time.Time, cancelToken, rescheduleToken string) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("event_date", newDate).
		Set("cancel_token", cancelToken).
		Set("reschedule_token", rescheduleToken).
		Set("reminder_sent", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, "Reschedule")
}

// ChargeNoShow фиксирует списание штрафа за неявку: бронирование
// закрывается, токены самообслуживания очищаются
func (r *Repository) ChargeNoShow(ctx context.Context, id int64, feeCents int64) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("no_show_fee_cents", feeCents).
		Set("cancel_token", "").
		Set("reschedule_token", "").
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ChargeNoShow - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, "ChargeNoShow")
}

// Delete физически удаляет бронирование.
// Вызывается только для отмененных бронирований по явному действию владельца.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, "Delete")
}

// ListRemindersDue получает подтвержденные оплаченные бронирования на
// указанную дату, по которым еще не отправлялось напоминание
func (r *Repository) ListRemindersDue(ctx context.Context, eventDate time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Eq{"event_date": eventDate}).
		Where(squirrel.Eq{"reminder_sent": false}).
		Where(squirrel.Eq{"payment_status": []domain.PaymentStatus{domain.PaymentPaid, domain.PaymentCardOnFile}}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRemindersDue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRemindersDue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// MarkReminderSent ставит флаг отправленного напоминания
func (r *Repository) MarkReminderSent(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("reminder_sent", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, "MarkReminderSent")
}

// execExpectingRow выполняет запрос, который должен затронуть ровно одну строку
func (r *Repository) execExpectingRow(ctx context.Context, query string, args []interface{}, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var extrasRaw, flavorsRaw []byte
		var createdAt, updatedAt, cancelledAt sql.NullTime
		var sessionID, customerID, paymentMethodID, paymentIntentID sql.NullString

		err := rows.Scan(
			&b.ID,
			&b.Reference,
			&b.EventDate,
			&b.EventTime,
			&b.EventAddress,
			&b.CustomerName,
			&b.CustomerEmail,
			&b.CustomerPhone,
			&b.GuestCount,
			&b.Duration,
			pq.Array(&b.Meats),
			&extrasRaw,
			&flavorsRaw,
			&b.TotalPriceCents,
			&b.PaymentMethod,
			&b.PaymentStatus,
			&b.Status,
			&b.CancelToken,
			&b.RescheduleToken,
			&sessionID,
			&customerID,
			&paymentMethodID,
			&paymentIntentID,
			&b.CancellationFeeCents,
			&b.NoShowFeeCents,
			&b.RefundCents,
			&b.DepositCents,
			&b.BalanceDueCents,
			&b.ReminderSent,
			&createdAt,
			&updatedAt,
			&cancelledAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if len(extrasRaw) > 0 {
			if err := json.Unmarshal(extrasRaw, &b.Extras); err != nil {
				return nil, fmt.Errorf("%w: scanBookings - unmarshal extras: %v", ErrScanRow, err)
			}
		}
		if len(flavorsRaw) > 0 {
			if err := json.Unmarshal(flavorsRaw, &b.ExtraFlavors); err != nil {
				return nil, fmt.Errorf("%w: scanBookings - unmarshal extra flavors: %v", ErrScanRow, err)
			}
		}

		b.StripeSessionID = nullableString(sessionID)
		b.StripeCustomerID = nullableString(customerID)
		b.StripePaymentMethodID = nullableString(paymentMethodID)
		b.StripePaymentIntentID = nullableString(paymentIntentID)

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		if cancelledAt.Valid {
			b.CancelledAt = &cancelledAt.Time
		}

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid || v.String == "" {
		return nil
	}
	s := v.String
	return &s
}
