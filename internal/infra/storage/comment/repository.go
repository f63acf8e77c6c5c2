package comment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	"github.com/EvgeniyTomilov/shareit/pkg/dbmetrics"
	"github.com/EvgeniyTomilov/shareit/pkg/psqlbuilder"
)

// Repository репозиторий для работы с комментариями к вещам
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория комментариев
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый комментарий
func (r *Repository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("comments").
		Columns("item_id", "author_id", "text", "created_at").
		Values(comment.ItemID, comment.AuthorID, comment.Text, comment.CreatedAt).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&comment.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return comment, nil
}

// ListByItem получает комментарии к вещи в порядке возрастания id
func (r *Repository) ListByItem(ctx context.Context, itemID int64) ([]*domain.Comment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "item_id", "author_id", "text", "created_at").
		From("comments").
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByItem - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByItem - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanComments(rows)
}

func scanComments(rows *sql.Rows) ([]*domain.Comment, error) {
	comments := make([]*domain.Comment, 0)

	for rows.Next() {
		var comment domain.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.ItemID,
			&comment.AuthorID,
			&comment.Text,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanComments - scan row: %v", ErrScanRow, err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanComments - rows error: %v", ErrScanRow, err)
	}

	return comments, nil
}
