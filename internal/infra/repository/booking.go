package repository

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectBookingView = `
SELECT b.id, b.start_date, b.end_date, b.status, i.id, i.name, u.id, u.name
FROM bookings b
JOIN items i ON i.id = b.item_id
JOIN users u ON u.id = b.booker_id`

// BookingRepository implements both the read and write booking ports.
// Lookups that authorize by relationship are single joined predicates on
// purpose: a caller outside the required role gets NOT_FOUND, never
// FORBIDDEN, so the response does not leak that the booking exists.
type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, item_id, booker_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID(), b.ItemID(), b.BookerID(), b.Period().Start(), b.Period().End(), b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindOwnedSnapshot(ctx context.Context, bookingID, ownerID uuid.UUID) (*commands.BookingSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT b.id, b.item_id, i.owner_id, b.booker_id, b.start_date, b.end_date, b.status
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE b.id = $1 AND i.owner_id = $2`,
		bookingID, ownerID,
	)

	var snap commands.BookingSnapshot
	var status string
	err := row.Scan(&snap.ID, &snap.ItemID, &snap.ItemOwnerID, &snap.BookerID, &snap.Start, &snap.End, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found for owner", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking for owner", err)
	}
	snap.Status = booking.Status(status)
	if !snap.Status.IsValid() {
		return nil, infra.WrapRepoErr(fmt.Sprintf("unexpected booking status %q", status), nil)
	}
	return &snap, nil
}

// UpdateStatus is a plain last-write-wins write; concurrent approvals can
// both pass the usecase guard. See DESIGN.md before adding a conditional
// write here, it changes observable behavior.
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, `UPDATE bookings SET status = $2 WHERE id = $1`, bookingID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, selectBookingView+` WHERE b.id = $1`, id)
	return scanBookingView(row)
}

func (r *BookingRepository) FindByIDForParticipant(ctx context.Context, id, userID uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, selectBookingView+`
		WHERE b.id = $1 AND (i.owner_id = $2 OR b.booker_id = $2)`,
		id, userID,
	)
	return scanBookingView(row)
}

func (r *BookingRepository) FindByBooker(ctx context.Context, bookerID uuid.UUID, state booking.StateFilter, now time.Time, page shared.Page) ([]*queries.BookingView, error) {
	return r.findByRole(ctx, "b.booker_id", bookerID, state, now, page)
}

func (r *BookingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, state booking.StateFilter, now time.Time, page shared.Page) ([]*queries.BookingView, error) {
	return r.findByRole(ctx, "i.owner_id", ownerID, state, now, page)
}

func (r *BookingRepository) FindApprovedByItem(ctx context.Context, itemID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, selectBookingView+`
		WHERE b.item_id = $1 AND b.status = $2`,
		itemID, booking.StatusApproved.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find approved bookings", err)
	}
	defer rows.Close()
	return collectBookingViews(rows)
}

// findByRole translates the state filter into a predicate on one role
// column. The same now value feeds both sides of the CURRENT condition.
func (r *BookingRepository) findByRole(ctx context.Context, roleCol string, userID uuid.UUID, state booking.StateFilter, now time.Time, page shared.Page) ([]*queries.BookingView, error) {
	query := selectBookingView + " WHERE " + roleCol + " = $1"
	args := []any{userID}

	switch state.Kind() {
	case booking.StateAll:
		// no extra predicate
	case booking.StateWaiting:
		query += " AND b.status = $2"
		args = append(args, booking.StatusWaiting.String())
	case booking.StateRejected:
		query += " AND b.status = $2"
		args = append(args, booking.StatusRejected.String())
	case booking.StateCurrent:
		query += " AND b.start_date <= $2 AND b.end_date > $2"
		args = append(args, now)
	case booking.StatePast:
		query += " AND b.end_date < $2"
		args = append(args, now)
	case booking.StateFuture:
		query += " AND b.start_date > $2"
		args = append(args, now)
	default:
		return nil, infra.WrapRepoErr(fmt.Sprintf("unsupported state filter %q", state.Literal()), nil)
	}

	query += fmt.Sprintf(" ORDER BY b.start_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, page.Limit(), page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()
	return collectBookingViews(rows)
}

type pgxRow interface {
	Scan(dest ...any) error
}

func scanBookingView(row pgxRow) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(&v.ID, &v.Start, &v.End, &v.Status, &v.Item.ID, &v.Item.Name, &v.Booker.ID, &v.Booker.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}
	return &v, nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func collectBookingViews(rows pgxRows) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}
