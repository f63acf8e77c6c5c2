package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	"github.com/EvgeniyTomilov/shareit/pkg/dbmetrics"
	"github.com/EvgeniyTomilov/shareit/pkg/psqlbuilder"
)

const bookingColumns = "b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status, b.created_at, b.updated_at"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"item_id",
			"booker_id",
			"start_date",
			"end_date",
			"status",
		).
		Values(
			booking.ItemID,
			booking.BookerID,
			booking.Start,
			booking.End,
			booking.Status,
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

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListByBooker получает страницу бронирований пользователя-арендатора
// с фильтрацией по темпоральному состоянию
// Сортировка: start_date DESC, id ASC - порядок load-bearing для пагинации
func (r *Repository) ListByBooker(ctx context.Context, bookerID int64, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns).
		From("bookings b").
		Where(squirrel.Eq{"b.booker_id": bookerID})

	selectBuilder = applyStateFilter(selectBuilder, filter)
	selectBuilder = applyPage(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooker - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooker - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListByOwner получает страницу бронирований вещей, принадлежащих владельцу,
// с фильтрацией по темпоральному состоянию
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Where(squirrel.Eq{"i.owner_id": ownerID})

	selectBuilder = applyStateFilter(selectBuilder, filter)
	selectBuilder = applyPage(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListStartedBefore получает бронирования вещи, начавшиеся до момента now,
// в порядке возрастания start_date
// Используется для проекции "последнего" бронирования вещи
func (r *Repository) ListStartedBefore(ctx context.Context, itemID int64, now time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings b").
		Where(squirrel.Eq{"b.item_id": itemID}).
		Where(squirrel.Lt{"b.start_date": now}).
		OrderBy("b.start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStartedBefore - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStartedBefore - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListStartingAfter получает бронирования вещи, начинающиеся после момента now,
// в порядке возрастания start_date
// Используется для проекции "следующего" бронирования вещи
func (r *Repository) ListStartingAfter(ctx context.Context, itemID int64, now time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings b").
		Where(squirrel.Eq{"b.item_id": itemID}).
		Where(squirrel.Gt{"b.start_date": now}).
		OrderBy("b.start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStartingAfter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStartingAfter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListEndedByBooker получает завершившиеся бронирования пользователя (end_date < now)
// Используется для проверки права оставить комментарий к вещи
func (r *Repository) ListEndedByBooker(ctx context.Context, bookerID int64, now time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings b").
		Where(squirrel.Eq{"b.booker_id": bookerID}).
		Where(squirrel.Lt{"b.end_date": now}).
		OrderBy("b.start_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEndedByBooker - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEndedByBooker - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// DecideStatus переводит бронирование из WAITING в терминальный статус
// Условное обновление (compare-and-swap по статусу): из двух конкурирующих
// решений выигрывает ровно одно, второе получает ErrStatusAlreadySet
func (r *Repository) DecideStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusWaiting}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecideStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecideStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecideStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusAlreadySet
	}

	return nil
}

// applyStateFilter накладывает предикат темпорального состояния на выборку
// Единая таблица предикатов для booker- и owner-выборок (см. domain.TemporalState)
func applyStateFilter(b squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	switch filter.State {
	case domain.StateFuture:
		return b.Where(squirrel.Gt{"b.start_date": filter.Now})
	case domain.StateCurrent:
		return b.Where(squirrel.LtOrEq{"b.start_date": filter.Now}).
			Where(squirrel.Gt{"b.end_date": filter.Now})
	case domain.StatePast:
		return b.Where(squirrel.Lt{"b.end_date": filter.Now})
	case domain.StateWaiting:
		return b.Where(squirrel.Eq{"b.status": domain.StatusWaiting})
	case domain.StateRejected:
		return b.Where(squirrel.Eq{"b.status": domain.StatusRejected})
	default: // ALL
		return b
	}
}

// applyPage накладывает сортировку и страницу на выборку
// Tie-break по id нужен, чтобы пагинация была детерминированной
// при совпадающих start_date
func applyPage(b squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	b = b.OrderBy("b.start_date DESC", "b.id ASC")
	if filter.Size > 0 {
		b = b.Limit(uint64(filter.Size)).Offset(uint64(filter.Page * filter.Size))
	}
	return b
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ItemID,
		&booking.BookerID,
		&booking.Start,
		&booking.End,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
