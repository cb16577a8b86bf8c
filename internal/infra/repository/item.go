package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectItemView = `
SELECT i.id, i.name, i.description, i.available, i.owner_id, i.request_id
FROM items i`

type ItemRepository struct {
	db *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO items (id, owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		i.ID(), i.OwnerID(), i.Name(), i.Description(), i.Available(), pgconv.UUIDPtrToPgtype(i.RequestID()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE items SET name = $2, description = $3, available = $4
		WHERE id = $1`,
		i.ID(), i.Name(), i.Description(), i.Available(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row := r.db.QueryRow(ctx, selectItemView+` WHERE i.id = $1`, id)
	return scanItemView(row)
}

func (r *ItemRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, selectItemView+`
		WHERE i.owner_id = $1
		ORDER BY i.id
		LIMIT $2 OFFSET $3`,
		ownerID, page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	defer rows.Close()
	return collectItemViews(rows)
}

// Search matches name or description case-insensitively and only returns
// items currently available for booking.
func (r *ItemRepository) Search(ctx context.Context, text string, page shared.Page) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, selectItemView+`
		WHERE i.available
		  AND (i.name ILIKE '%' || $1 || '%' OR i.description ILIKE '%' || $1 || '%')
		ORDER BY i.id
		LIMIT $2 OFFSET $3`,
		text, page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	defer rows.Close()
	return collectItemViews(rows)
}

func scanItemView(row pgxRow) (*queries.ItemView, error) {
	var v queries.ItemView
	var requestID pgtype.UUID
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID, &requestID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan item", err)
	}
	v.RequestID = pgconv.UUIDPtrFromPgtype(requestID)
	v.Comments = []queries.CommentView{}
	return &v, nil
}

func collectItemViews(rows pgxRows) ([]*queries.ItemView, error) {
	views := make([]*queries.ItemView, 0)
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return views, nil
}
