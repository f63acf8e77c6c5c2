package request

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	"github.com/EvgeniyTomilov/shareit/pkg/dbmetrics"
	"github.com/EvgeniyTomilov/shareit/pkg/psqlbuilder"
)

const requestColumns = "id, requester_id, description, created_at"

// Repository репозиторий для работы с запросами вещей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория запросов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый запрос вещи
func (r *Repository) Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("item_requests").
		Columns("requester_id", "description", "created_at").
		Values(req.RequesterID, req.Description, req.CreatedAt).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает запрос по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns).
		From("item_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var req domain.ItemRequest
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&req.ID, &req.RequesterID, &req.Description, &req.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return &req, nil
}

// ListByRequester получает запросы пользователя, новые первыми
func (r *Repository) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns).
		From("item_requests").
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRequester - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRequester - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// ListOthers получает страницу чужих запросов (все, кроме запросов requesterID),
// новые первыми
func (r *Repository) ListOthers(ctx context.Context, requesterID int64, page, size int) ([]*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns).
		From("item_requests").
		Where(squirrel.NotEq{"requester_id": requesterID}).
		OrderBy("created_at DESC")

	if size > 0 {
		selectBuilder = selectBuilder.Limit(uint64(size)).Offset(uint64(page * size))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOthers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOthers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

func scanRequests(rows *sql.Rows) ([]*domain.ItemRequest, error) {
	requests := make([]*domain.ItemRequest, 0)

	for rows.Next() {
		var req domain.ItemRequest
		err := rows.Scan(&req.ID, &req.RequesterID, &req.Description, &req.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRequests - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRequests - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}
