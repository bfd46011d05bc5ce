package commands

import (
	"context"
	"time"

	"tablebook/internal/domain/authz"
	"tablebook/internal/domain/table"
	"tablebook/internal/domain/user"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/pkg/patch"
)

type CreateTableInput struct {
	RestaurantID int64
	Code         string
	Capacity     int
}

type UpdateTableInput struct {
	Code     *string
	Capacity *int
}

type TableCommands interface {
	Create(ctx context.Context, p user.Principal, in CreateTableInput) (int64, error)
	Update(ctx context.Context, p user.Principal, id int64, in UpdateTableInput) error
	Delete(ctx context.Context, p user.Principal, id int64) error
}

type tableCommandsImpl struct {
	reads CommandReads
	repo  TableRepository
}

func NewTableCommands(reads CommandReads, repo TableRepository) TableCommands {
	return &tableCommandsImpl{reads: reads, repo: repo}
}

func (c *tableCommandsImpl) Create(ctx context.Context, p user.Principal, in CreateTableInput) (int64, error) {
	rest, err := c.reads.RestaurantByID(ctx, in.RestaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.ErrRestaurantNotFound
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !authz.CanMutateTable(p, authz.TableRef{RestaurantOwnerID: rest.OwnerID}) {
		return 0, errs.ErrAccessDenied
	}

	code, err := table.NewCode(in.Code)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	capacity, err := table.NewCapacity(in.Capacity)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.repo.Create(ctx, table.NewTable(in.RestaurantID, code, capacity))
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return 0, errs.ErrRestaurantNotFound
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *tableCommandsImpl) Update(ctx context.Context, p user.Principal, id int64, in UpdateTableInput) error {
	snap, err := c.loadSnapshot(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanMutateTable(p, authz.TableRef{RestaurantOwnerID: snap.RestaurantOwnerID}) {
		return errs.ErrAccessDenied
	}

	code, err := table.NewCode(patch.Coalesce(in.Code, snap.Code))
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	capacity, err := table.NewCapacity(patch.Coalesce(in.Capacity, int(snap.Capacity)))
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	entity := table.ReconstructTable(snap.ID, snap.RestaurantID, code, capacity, time.Time{}, time.Time{})
	if err := c.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrTableNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// Delete is blocked while non-cancelled reservations reference the table;
// cancelled history is removed with it.
func (c *tableCommandsImpl) Delete(ctx context.Context, p user.Principal, id int64) error {
	snap, err := c.loadSnapshot(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanMutateTable(p, authz.TableRef{RestaurantOwnerID: snap.RestaurantOwnerID}) {
		return errs.ErrAccessDenied
	}

	active, err := c.reads.TableHasActiveReservations(ctx, id)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if active {
		return errs.ErrHasActiveReservations
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.ErrHasActiveReservations
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrTableNotFound
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (c *tableCommandsImpl) loadSnapshot(ctx context.Context, id int64) (*TableSnapshot, error) {
	snap, err := c.reads.TableByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTableNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}
