package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tablebook/internal/domain/authz"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/user"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	TableID int64
	At      time.Time
}

type TransitionReservationInput struct {
	To      reservation.Status
	Version *int64
}

type RescheduleReservationInput struct {
	TableID int64
	At      time.Time
	Version *int64
}

type ReservationCommands interface {
	Create(ctx context.Context, p user.Principal, in CreateReservationInput) (int64, error)
	TransitionStatus(ctx context.Context, p user.Principal, id int64, in TransitionReservationInput) error
	Reschedule(ctx context.Context, p user.Principal, id int64, in RescheduleReservationInput) error
	Delete(ctx context.Context, p user.Principal, id int64) error
}

type reservationCommandsImpl struct {
	reads      CommandReads
	repo       ReservationRepository
	notifier   NotificationDispatcher
	principals PrincipalResolver
	clock      clock.Clock
}

func NewReservationCommands(
	reads CommandReads,
	repo ReservationRepository,
	notifier NotificationDispatcher,
	principals PrincipalResolver,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reads:      reads,
		repo:       repo,
		notifier:   notifier,
		principals: principals,
		clock:      clk,
	}
}

// Create books a slot for a diner. The in-process availability check is a
// fast path for a friendly conflict message; the partial unique index on
// (table_id, reserved_at) is what actually serializes concurrent writers,
// and a duplicate-key from the store surfaces as the same SlotUnavailable.
func (c *reservationCommandsImpl) Create(ctx context.Context, p user.Principal, in CreateReservationInput) (int64, error) {
	if !authz.CanCreateReservation(p) {
		return 0, errs.ErrAccessDenied
	}

	slot, err := reservation.NewSlot(in.TableID, in.At)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	if slot.At().Before(c.clock.Now()) {
		return 0, errs.Mark(reservation.ErrPastInstant, errs.ErrDomainValidation)
	}

	tbl, err := c.reads.TableByID(ctx, in.TableID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.ErrTableNotFound
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	taken, err := c.reads.ActiveReservationExists(ctx, slot.TableID(), slot.At(), 0)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if taken {
		return 0, errs.ErrSlotUnavailable
	}

	id, err := c.repo.Create(ctx, reservation.NewReservation(slot, p.ID))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, errs.ErrSlotUnavailable
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.notifyOperator(ctx, tbl.RestaurantOwnerID, id, slot)
	return id, nil
}

func (c *reservationCommandsImpl) TransitionStatus(ctx context.Context, p user.Principal, id int64, in TransitionReservationInput) error {
	snap, err := c.loadSnapshot(ctx, id)
	if err != nil {
		return err
	}

	ref := authz.ReservationRef{DinerID: snap.DinerID, RestaurantOwnerID: snap.RestaurantOwnerID}
	if !authz.CanTransitionReservation(p, ref) {
		return errs.ErrAccessDenied
	}

	if err := reservation.ValidateTransition(snap.Status, in.To); err != nil {
		return errs.Mark(err, errs.ErrInvalidTransition)
	}

	version := patch.Coalesce(in.Version, snap.Version)
	if err := c.repo.UpdateStatus(ctx, id, in.To, version); err != nil {
		switch {
		case infra.IsKind(err, infra.KindStaleWrite):
			return errs.ErrStaleWrite
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrReservationNotFound
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if in.To == reservation.StatusConfirmed || in.To == reservation.StatusCompleted {
		c.notifyDiner(ctx, snap, in.To)
	}
	return nil
}

// Reschedule moves a pre-terminal reservation to a new (table, instant)
// pair, re-running the availability check excluding the reservation itself.
func (c *reservationCommandsImpl) Reschedule(ctx context.Context, p user.Principal, id int64, in RescheduleReservationInput) error {
	snap, err := c.loadSnapshot(ctx, id)
	if err != nil {
		return err
	}

	ref := authz.ReservationRef{DinerID: snap.DinerID, RestaurantOwnerID: snap.RestaurantOwnerID}
	if !authz.CanRescheduleReservation(p, ref) {
		return errs.ErrAccessDenied
	}

	if snap.Status.IsTerminal() {
		return errs.ErrInvalidTransition
	}

	slot, err := reservation.NewSlot(in.TableID, in.At)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if slot.At().Before(c.clock.Now()) {
		return errs.Mark(reservation.ErrPastInstant, errs.ErrDomainValidation)
	}

	if _, err := c.reads.TableByID(ctx, in.TableID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrTableNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	taken, err := c.reads.ActiveReservationExists(ctx, slot.TableID(), slot.At(), id)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if taken {
		return errs.ErrSlotUnavailable
	}

	version := patch.Coalesce(in.Version, snap.Version)
	if err := c.repo.UpdateSlot(ctx, id, slot, version); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.ErrSlotUnavailable
		case infra.IsKind(err, infra.KindStaleWrite):
			return errs.ErrStaleWrite
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrReservationNotFound
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, p user.Principal, id int64) error {
	snap, err := c.loadSnapshot(ctx, id)
	if err != nil {
		return err
	}

	ref := authz.ReservationRef{DinerID: snap.DinerID, RestaurantOwnerID: snap.RestaurantOwnerID}
	if !authz.CanDeleteReservation(p, ref) {
		return errs.ErrAccessDenied
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrReservationNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reservationCommandsImpl) loadSnapshot(ctx context.Context, id int64) (*ReservationSnapshot, error) {
	snap, err := c.reads.ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

// notifyOperator tells the owning operator about a new pending reservation.
// Unclaimed restaurants have nobody to notify.
func (c *reservationCommandsImpl) notifyOperator(ctx context.Context, ownerID *uuid.UUID, reservationID int64, slot reservation.Slot) {
	if ownerID == nil {
		return
	}

	contact, err := c.principals.Resolve(ctx, *ownerID)
	if err != nil {
		slog.Warn("operator contact lookup failed, skipping notification",
			"reservation_id", reservationID, "error", err.Error())
		return
	}

	subject := "New pending reservation"
	body := fmt.Sprintf("Reservation #%d requested for table %d at %s.",
		reservationID, slot.TableID(), slot.At().Format(time.RFC3339))
	c.notifier.Send(ctx, contact.Email, subject, body)
}

func (c *reservationCommandsImpl) notifyDiner(ctx context.Context, snap *ReservationSnapshot, to reservation.Status) {
	contact, err := c.principals.Resolve(ctx, snap.DinerID)
	if err != nil {
		slog.Warn("diner contact lookup failed, skipping notification",
			"reservation_id", snap.ID, "error", err.Error())
		return
	}

	subject := fmt.Sprintf("Your reservation is %s", to)
	body := fmt.Sprintf("Reservation #%d for %s is now %s.",
		snap.ID, snap.ReservedAt.UTC().Format(time.RFC3339), to)
	c.notifier.Send(ctx, contact.Email, subject, body)
}
