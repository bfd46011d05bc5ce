//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tablebook/internal/domain/reservation"
	domreview "tablebook/internal/domain/review"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/commands"
	"tablebook/tests/common/builder"
	commandsmock "tablebook/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	reads    *commandsmock.MockCommandReads
	repo     *commandsmock.MockReviewRepository
	commands commands.ReviewCommands
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reads = commandsmock.NewMockCommandReads(s.ctrl)
	s.repo = commandsmock.NewMockReviewRepository(s.ctrl)
	s.commands = commands.NewReviewCommands(s.reads, s.repo)
}

func (s *ReviewCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

func (s *ReviewCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("diner reviews own completed reservation", func() {
		diner := builder.DinerPrincipal()
		resSnap := builder.NewReservationBuilder().
			WithDinerID(diner.ID).
			WithStatus(reservation.StatusCompleted).
			BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, resSnap.ID).Return(resSnap, nil)
		s.reads.EXPECT().ReviewExistsForReservation(ctx, resSnap.ID).Return(false, nil)
		s.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r *domreview.Review) (int64, error) {
				s.Equal(resSnap.ID, r.ReservationID())
				s.Equal(diner.ID, r.DinerID())
				s.Equal(5, r.Rating().Value())
				return 9, nil
			})

		id, err := s.commands.Create(ctx, diner,
			commands.CreateReviewInput{ReservationID: resSnap.ID, Rating: 5, Comment: "top"})
		s.Require().NoError(err)
		s.Equal(int64(9), id)
	})

	s.Run("someone else's reservation", func() {
		resSnap := builder.NewReservationBuilder().
			WithStatus(reservation.StatusCompleted).
			BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, resSnap.ID).Return(resSnap, nil)
		s.reads.EXPECT().ReviewExistsForReservation(ctx, resSnap.ID).Return(false, nil)

		_, err := s.commands.Create(ctx, builder.DinerPrincipal(),
			commands.CreateReviewInput{ReservationID: resSnap.ID, Rating: 4})
		s.Require().ErrorIs(err, errs.ErrAccessDenied)
	})

	s.Run("reservation not yet completed", func() {
		diner := builder.DinerPrincipal()
		resSnap := builder.NewReservationBuilder().
			WithDinerID(diner.ID).
			WithStatus(reservation.StatusConfirmed).
			BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, resSnap.ID).Return(resSnap, nil)
		s.reads.EXPECT().ReviewExistsForReservation(ctx, resSnap.ID).Return(false, nil)

		_, err := s.commands.Create(ctx, diner,
			commands.CreateReviewInput{ReservationID: resSnap.ID, Rating: 4})
		s.Require().ErrorIs(err, errs.ErrNotEligible)
	})

	s.Run("second review", func() {
		diner := builder.DinerPrincipal()
		resSnap := builder.NewReservationBuilder().
			WithDinerID(diner.ID).
			WithStatus(reservation.StatusCompleted).
			BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, resSnap.ID).Return(resSnap, nil)
		s.reads.EXPECT().ReviewExistsForReservation(ctx, resSnap.ID).Return(true, nil)

		_, err := s.commands.Create(ctx, diner,
			commands.CreateReviewInput{ReservationID: resSnap.ID, Rating: 4})
		s.Require().ErrorIs(err, errs.ErrAlreadyReviewed)
	})

	s.Run("concurrent duplicate loses to the unique constraint", func() {
		diner := builder.DinerPrincipal()
		resSnap := builder.NewReservationBuilder().
			WithDinerID(diner.ID).
			WithStatus(reservation.StatusCompleted).
			BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, resSnap.ID).Return(resSnap, nil)
		s.reads.EXPECT().ReviewExistsForReservation(ctx, resSnap.ID).Return(false, nil)
		s.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("review exists", nil, infra.KindDuplicateKey))

		_, err := s.commands.Create(ctx, diner,
			commands.CreateReviewInput{ReservationID: resSnap.ID, Rating: 4})
		s.Require().ErrorIs(err, errs.ErrAlreadyReviewed)
	})

	s.Run("missing reservation", func() {
		s.reads.EXPECT().ReservationByID(ctx, int64(404)).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := s.commands.Create(ctx, builder.DinerPrincipal(),
			commands.CreateReviewInput{ReservationID: 404, Rating: 4})
		s.Require().ErrorIs(err, errs.ErrReservationNotFound)
	})

	s.Run("invalid rating after the gate", func() {
		diner := builder.DinerPrincipal()
		resSnap := builder.NewReservationBuilder().
			WithDinerID(diner.ID).
			WithStatus(reservation.StatusCompleted).
			BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, resSnap.ID).Return(resSnap, nil)
		s.reads.EXPECT().ReviewExistsForReservation(ctx, resSnap.ID).Return(false, nil)

		_, err := s.commands.Create(ctx, diner,
			commands.CreateReviewInput{ReservationID: resSnap.ID, Rating: 6})
		s.Require().ErrorIs(err, errs.ErrDomainValidation)
	})
}

func (s *ReviewCommandsTestSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("author patches only the rating", func() {
		diner := builder.DinerPrincipal()
		snap := builder.NewReviewBuilder().WithDinerID(diner.ID).BuildSnapshot()
		rating := 2

		s.reads.EXPECT().ReviewByID(ctx, snap.ID).Return(snap, nil)
		s.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r *domreview.Review) error {
				s.Equal(2, r.Rating().Value())
				// untouched field keeps its stored value
				s.Equal(*snap.Comment, r.Comment().String())
				return nil
			})

		err := s.commands.Update(ctx, diner, snap.ID, commands.UpdateReviewInput{Rating: &rating})
		s.Require().NoError(err)
	})

	s.Run("admin edits any review", func() {
		snap := builder.NewReviewBuilder().BuildSnapshot()
		comment := "moderated"

		s.reads.EXPECT().ReviewByID(ctx, snap.ID).Return(snap, nil)
		s.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		err := s.commands.Update(ctx, builder.AdminPrincipal(), snap.ID,
			commands.UpdateReviewInput{Comment: &comment})
		s.Require().NoError(err)
	})

	s.Run("another diner is refused", func() {
		snap := builder.NewReviewBuilder().BuildSnapshot()
		rating := 1

		s.reads.EXPECT().ReviewByID(ctx, snap.ID).Return(snap, nil)

		err := s.commands.Update(ctx, builder.DinerPrincipal(), snap.ID,
			commands.UpdateReviewInput{Rating: &rating})
		s.Require().ErrorIs(err, errs.ErrAccessDenied)
	})

	s.Run("missing review", func() {
		s.reads.EXPECT().ReviewByID(ctx, int64(404)).
			Return(nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound))

		err := s.commands.Update(ctx, builder.AdminPrincipal(), 404, commands.UpdateReviewInput{})
		s.Require().ErrorIs(err, errs.ErrReviewNotFound)
	})
}

func (s *ReviewCommandsTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("author deletes own review", func() {
		diner := builder.DinerPrincipal()
		snap := builder.NewReviewBuilder().WithDinerID(diner.ID).BuildSnapshot()

		s.reads.EXPECT().ReviewByID(ctx, snap.ID).Return(snap, nil)
		s.repo.EXPECT().Delete(ctx, snap.ID).Return(nil)

		s.Require().NoError(s.commands.Delete(ctx, diner, snap.ID))
	})

	s.Run("operator cannot moderate reviews on own restaurant", func() {
		operator := builder.OperatorPrincipal()
		snap := builder.NewReviewBuilder().BuildSnapshot()
		snap.RestaurantOwnerID = &operator.ID

		s.reads.EXPECT().ReviewByID(ctx, snap.ID).Return(snap, nil)

		err := s.commands.Delete(ctx, operator, snap.ID)
		s.Require().ErrorIs(err, errs.ErrAccessDenied)
	})
}
