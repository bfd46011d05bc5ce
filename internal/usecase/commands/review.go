package commands

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/domain/authz"
	domreview "tablebook/internal/domain/review"
	"tablebook/internal/domain/user"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/pkg/patch"
)

type CreateReviewInput struct {
	ReservationID int64
	Rating        int
	Comment       string
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

type ReviewCommands interface {
	Create(ctx context.Context, p user.Principal, in CreateReviewInput) (int64, error)
	Update(ctx context.Context, p user.Principal, id int64, in UpdateReviewInput) error
	Delete(ctx context.Context, p user.Principal, id int64) error
}

type reviewCommandsImpl struct {
	reads CommandReads
	repo  ReviewRepository
}

func NewReviewCommands(reads CommandReads, repo ReviewRepository) ReviewCommands {
	return &reviewCommandsImpl{reads: reads, repo: repo}
}

// Create gates on ownership, completion, and single-review, in that order;
// the unique constraint on reservation_id backstops the duplicate check
// against concurrent submissions.
func (c *reviewCommandsImpl) Create(ctx context.Context, p user.Principal, in CreateReviewInput) (int64, error) {
	snap, err := c.reads.ReservationByID(ctx, in.ReservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.ErrReservationNotFound
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	reviewed, err := c.reads.ReviewExistsForReservation(ctx, in.ReservationID)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if gateErr := domreview.CanCreate(p, snap.DinerID, snap.Status, reviewed); gateErr != nil {
		return 0, mapGateError(gateErr)
	}

	rating, err := domreview.NewRating(in.Rating)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	comment, err := domreview.NewComment(in.Comment)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.repo.Create(ctx, domreview.NewReview(in.ReservationID, p.ID, rating, comment))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, errs.ErrAlreadyReviewed
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *reviewCommandsImpl) Update(ctx context.Context, p user.Principal, id int64, in UpdateReviewInput) error {
	snap, err := c.loadSnapshot(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanMutateReview(p, authz.ReviewRef{DinerID: snap.DinerID, RestaurantOwnerID: snap.RestaurantOwnerID}) {
		return errs.ErrAccessDenied
	}

	rating, err := domreview.NewRating(patch.Coalesce(in.Rating, int(snap.Rating)))
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	comment, err := domreview.NewComment(patch.Coalesce(in.Comment, patch.Coalesce(snap.Comment, "")))
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	entity := domreview.ReconstructReview(snap.ID, snap.ReservationID, snap.DinerID, rating, comment, time.Time{}, time.Time{})
	if err := c.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrReviewNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reviewCommandsImpl) Delete(ctx context.Context, p user.Principal, id int64) error {
	snap, err := c.loadSnapshot(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanMutateReview(p, authz.ReviewRef{DinerID: snap.DinerID, RestaurantOwnerID: snap.RestaurantOwnerID}) {
		return errs.ErrAccessDenied
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrReviewNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reviewCommandsImpl) loadSnapshot(ctx context.Context, id int64) (*ReviewSnapshot, error) {
	snap, err := c.reads.ReviewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReviewNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

// mapGateError keeps the gate's three refusals distinguishable to callers.
func mapGateError(err error) error {
	switch {
	case errors.Is(err, domreview.ErrNotReservationDiner):
		return errs.ErrAccessDenied
	case errors.Is(err, domreview.ErrNotCompleted):
		return errs.ErrNotEligible
	case errors.Is(err, domreview.ErrAlreadyReviewed):
		return errs.ErrAlreadyReviewed
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
