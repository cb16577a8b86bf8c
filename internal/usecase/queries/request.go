package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestQueries interface {
	GetByID(ctx context.Context, requestID, userID uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
	// ListForeign pages through requests created by other users, oldest
	// first, so item owners can find wants they could satisfy.
	ListForeign(ctx context.Context, userID uuid.UUID, from, size int) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReader
	users    UserReader
}

func NewRequestQueries(requests RequestReader, users UserReader) RequestQueries {
	return &requestQueriesImpl{requests: requests, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, requestID, userID uuid.UUID) (*RequestView, error) {
	if err := requireUser(ctx, q.users, userID); err != nil {
		return nil, err
	}

	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrRequestNotFound)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error) {
	if err := requireUser(ctx, q.users, userID); err != nil {
		return nil, err
	}

	views, err := q.requests.FindByRequester(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	return views, nil
}

func (q *requestQueriesImpl) ListForeign(ctx context.Context, userID uuid.UUID, from, size int) ([]*RequestView, error) {
	if err := requireUser(ctx, q.users, userID); err != nil {
		return nil, err
	}

	page, err := shared.NewPage(from, size)
	if err != nil {
		return nil, err
	}

	views, err := q.requests.FindAllForeign(ctx, userID, page)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	return views, nil
}
