package commands

import (
	"context"
	"time"

	"tablebook/internal/domain/authz"
	"tablebook/internal/domain/restaurant"
	"tablebook/internal/domain/user"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateRestaurantInput struct {
	Name    string
	Address string
	Phone   string
	// OwnerID is honored for admins only; operators always own what they
	// create.
	OwnerID *uuid.UUID
}

type UpdateRestaurantInput struct {
	Name    *string
	Address *string
	Phone   *string
}

type RestaurantCommands interface {
	Create(ctx context.Context, p user.Principal, in CreateRestaurantInput) (int64, error)
	Update(ctx context.Context, p user.Principal, id int64, in UpdateRestaurantInput) error
	Delete(ctx context.Context, p user.Principal, id int64) error
}

type restaurantCommandsImpl struct {
	reads CommandReads
	repo  RestaurantRepository
	cache RestaurantCacheInvalidator
}

func NewRestaurantCommands(reads CommandReads, repo RestaurantRepository, cache RestaurantCacheInvalidator) RestaurantCommands {
	return &restaurantCommandsImpl{reads: reads, repo: repo, cache: cache}
}

func (c *restaurantCommandsImpl) Create(ctx context.Context, p user.Principal, in CreateRestaurantInput) (int64, error) {
	if !authz.CanCreateRestaurant(p) {
		return 0, errs.ErrAccessDenied
	}

	entity, err := buildRestaurant(p, in)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.cache.Invalidate(ctx)
	return id, nil
}

func (c *restaurantCommandsImpl) Update(ctx context.Context, p user.Principal, id int64, in UpdateRestaurantInput) error {
	snap, err := c.loadSnapshot(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanEditRestaurant(p, authz.RestaurantRef{OwnerID: snap.OwnerID}) {
		return errs.ErrAccessDenied
	}

	entity, err := patchedRestaurant(snap, in)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrRestaurantNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.cache.Invalidate(ctx)
	return nil
}

// Delete is blocked while any non-cancelled reservation references the
// restaurant's tables; the foreign-key restriction backstops the check.
// Tables and cancelled reservation history go with the restaurant.
func (c *restaurantCommandsImpl) Delete(ctx context.Context, p user.Principal, id int64) error {
	snap, err := c.loadSnapshot(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanDeleteRestaurant(p, authz.RestaurantRef{OwnerID: snap.OwnerID}) {
		return errs.ErrAccessDenied
	}

	active, err := c.reads.RestaurantHasActiveReservations(ctx, id)
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
			return errs.ErrRestaurantNotFound
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	c.cache.Invalidate(ctx)
	return nil
}

func (c *restaurantCommandsImpl) loadSnapshot(ctx context.Context, id int64) (*RestaurantSnapshot, error) {
	snap, err := c.reads.RestaurantByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRestaurantNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func buildRestaurant(p user.Principal, in CreateRestaurantInput) (*restaurant.Restaurant, error) {
	name, err := restaurant.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	address, err := restaurant.NewAddress(in.Address)
	if err != nil {
		return nil, err
	}
	phone, err := restaurant.NewPhone(in.Phone)
	if err != nil {
		return nil, err
	}

	ownerID := in.OwnerID
	if p.IsOperator() {
		id := p.ID
		ownerID = &id
	}

	return restaurant.NewRestaurant(name, address, phone, ownerID), nil
}

// Updates are full-row writes; unset fields keep their stored values.
func patchedRestaurant(snap *RestaurantSnapshot, in UpdateRestaurantInput) (*restaurant.Restaurant, error) {
	name, err := restaurant.NewName(patch.Coalesce(in.Name, snap.Name))
	if err != nil {
		return nil, err
	}
	address, err := restaurant.NewAddress(patch.Coalesce(in.Address, snap.Address))
	if err != nil {
		return nil, err
	}
	phone, err := restaurant.NewPhone(patch.Coalesce(in.Phone, snap.Phone))
	if err != nil {
		return nil, err
	}

	return restaurant.ReconstructRestaurant(snap.ID, name, address, phone, snap.OwnerID, time.Time{}, time.Time{}), nil
}
