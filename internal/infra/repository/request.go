package repository

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO requests (id, description, requester_id, created)
		VALUES ($1, $2, $3, $4)`,
		req.ID(), req.Description(), req.RequesterID(), req.Created(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create request", err)
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, description, requester_id, created
		FROM requests WHERE id = $1`,
		id,
	)

	var v queries.RequestView
	err := row.Scan(&v.ID, &v.Description, &v.RequesterID, &v.Created)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan request", err)
	}
	if err := r.attachItems(ctx, []*queries.RequestView{&v}); err != nil {
		return nil, err
	}
	return &v, nil
}

// FindByRequester lists the caller's own requests, newest first.
func (r *RequestRepository) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, description, requester_id, created
		FROM requests
		WHERE requester_id = $1
		ORDER BY created DESC`,
		requesterID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list own requests", err)
	}
	defer rows.Close()
	return r.collectWithItems(ctx, rows)
}

// FindAllForeign lists everyone else's requests, oldest first, so a browsing
// user sees requests they could answer with a new item.
func (r *RequestRepository) FindAllForeign(ctx context.Context, requesterID uuid.UUID, page shared.Page) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, description, requester_id, created
		FROM requests
		WHERE requester_id <> $1
		ORDER BY created
		LIMIT $2 OFFSET $3`,
		requesterID, page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list foreign requests", err)
	}
	defer rows.Close()
	return r.collectWithItems(ctx, rows)
}

func (r *RequestRepository) collectWithItems(ctx context.Context, rows pgxRows) ([]*queries.RequestView, error) {
	views := make([]*queries.RequestView, 0)
	for rows.Next() {
		var v queries.RequestView
		if err := rows.Scan(&v.ID, &v.Description, &v.RequesterID, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err)
	}
	if err := r.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// attachItems fills each view's Items with the items offered in answer to
// that request, in one query across the whole batch.
func (r *RequestRepository) attachItems(ctx context.Context, views []*queries.RequestView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	byID := make(map[uuid.UUID]*queries.RequestView, len(views))
	for _, v := range views {
		v.Items = []queries.ItemRef{}
		ids = append(ids, v.ID)
		byID[v.ID] = v
	}

	rows, err := r.db.Query(ctx, `
		SELECT i.request_id, i.id, i.name
		FROM items i
		WHERE i.request_id = ANY($1)
		ORDER BY i.id`,
		ids,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to list request items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var requestID uuid.UUID
		var ref queries.ItemRef
		if err := rows.Scan(&requestID, &ref.ID, &ref.Name); err != nil {
			return infra.WrapRepoErr("failed to scan request item", err)
		}
		if v, ok := byID[requestID]; ok {
			v.Items = append(v.Items, ref)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read request item rows", err)
	}
	return nil
}
