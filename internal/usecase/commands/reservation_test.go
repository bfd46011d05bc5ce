//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/commands"
	"tablebook/tests/common/builder"
	commandsmock "tablebook/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	reads      *commandsmock.MockCommandReads
	repo       *commandsmock.MockReservationRepository
	notifier   *commandsmock.MockNotificationDispatcher
	principals *commandsmock.MockPrincipalResolver
	commands   commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reads = commandsmock.NewMockCommandReads(s.ctrl)
	s.repo = commandsmock.NewMockReservationRepository(s.ctrl)
	s.notifier = commandsmock.NewMockNotificationDispatcher(s.ctrl)
	s.principals = commandsmock.NewMockPrincipalResolver(s.ctrl)
	s.commands = commands.NewReservationCommands(
		s.reads, s.repo, s.notifier, s.principals,
		clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	at := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	in := commands.CreateReservationInput{TableID: 10, At: at}

	s.Run("books a free slot and notifies the operator", func() {
		diner := builder.DinerPrincipal()
		tbl := builder.NewTableBuilder().BuildSnapshot()

		s.reads.EXPECT().TableByID(ctx, int64(10)).Return(tbl, nil)
		s.reads.EXPECT().ActiveReservationExists(ctx, int64(10), at, int64(0)).Return(false, nil)
		s.repo.EXPECT().Create(ctx, gomock.Any()).Return(int64(77), nil)
		s.principals.EXPECT().Resolve(ctx, *tbl.RestaurantOwnerID).
			Return(&commands.PrincipalContact{Email: "owner@example.com", Role: "operator"}, nil)
		s.notifier.EXPECT().Send(ctx, "owner@example.com", gomock.Any(), gomock.Any())

		id, err := s.commands.Create(ctx, diner, in)
		s.Require().NoError(err)
		s.Equal(int64(77), id)
	})

	s.Run("skips notification for unclaimed restaurants", func() {
		tbl := builder.NewTableBuilder().WithoutOwner().BuildSnapshot()

		s.reads.EXPECT().TableByID(ctx, int64(10)).Return(tbl, nil)
		s.reads.EXPECT().ActiveReservationExists(ctx, int64(10), at, int64(0)).Return(false, nil)
		s.repo.EXPECT().Create(ctx, gomock.Any()).Return(int64(78), nil)

		_, err := s.commands.Create(ctx, builder.DinerPrincipal(), in)
		s.Require().NoError(err)
	})

	s.Run("operators and admins cannot book", func() {
		_, err := s.commands.Create(ctx, builder.OperatorPrincipal(), in)
		s.Require().ErrorIs(err, errs.ErrAccessDenied)

		_, err = s.commands.Create(ctx, builder.AdminPrincipal(), in)
		s.Require().ErrorIs(err, errs.ErrAccessDenied)
	})

	s.Run("unknown table", func() {
		s.reads.EXPECT().TableByID(ctx, int64(10)).
			Return(nil, infra.WrapRepoErr("table not found", nil, infra.KindNotFound))

		_, err := s.commands.Create(ctx, builder.DinerPrincipal(), in)
		s.Require().ErrorIs(err, errs.ErrTableNotFound)
	})

	s.Run("slot already held", func() {
		tbl := builder.NewTableBuilder().BuildSnapshot()

		s.reads.EXPECT().TableByID(ctx, int64(10)).Return(tbl, nil)
		s.reads.EXPECT().ActiveReservationExists(ctx, int64(10), at, int64(0)).Return(true, nil)

		_, err := s.commands.Create(ctx, builder.DinerPrincipal(), in)
		s.Require().ErrorIs(err, errs.ErrSlotUnavailable)
	})

	s.Run("concurrent writer loses to the unique index", func() {
		tbl := builder.NewTableBuilder().BuildSnapshot()

		s.reads.EXPECT().TableByID(ctx, int64(10)).Return(tbl, nil)
		s.reads.EXPECT().ActiveReservationExists(ctx, int64(10), at, int64(0)).Return(false, nil)
		s.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("slot already reserved", nil, infra.KindDuplicateKey))

		_, err := s.commands.Create(ctx, builder.DinerPrincipal(), in)
		s.Require().ErrorIs(err, errs.ErrSlotUnavailable)
	})

	s.Run("zero instant fails validation", func() {
		_, err := s.commands.Create(ctx, builder.DinerPrincipal(), commands.CreateReservationInput{TableID: 10})
		s.Require().ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("instant before the current time fails validation", func() {
		// Clock reads 2026-03-01 12:00 UTC; nothing is booked for yesterday.
		past := commands.CreateReservationInput{TableID: 10, At: time.Date(2026, 2, 28, 19, 0, 0, 0, time.UTC)}

		_, err := s.commands.Create(ctx, builder.DinerPrincipal(), past)
		s.Require().ErrorIs(err, errs.ErrDomainValidation)
		s.Require().ErrorIs(err, reservation.ErrPastInstant)
	})
}

func (s *ReservationCommandsTestSuite) TestTransitionStatus() {
	ctx := context.Background()

	s.Run("operator confirms a pending reservation and the diner is notified", func() {
		operator := builder.OperatorPrincipal()
		snap := builder.NewReservationBuilder().WithOwnerID(operator.ID).BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)
		s.repo.EXPECT().UpdateStatus(ctx, snap.ID, reservation.StatusConfirmed, snap.Version).Return(nil)
		s.principals.EXPECT().Resolve(ctx, snap.DinerID).
			Return(&commands.PrincipalContact{Email: "diner@example.com", Role: "diner"}, nil)
		s.notifier.EXPECT().Send(ctx, "diner@example.com", gomock.Any(), gomock.Any())

		err := s.commands.TransitionStatus(ctx, operator, snap.ID,
			commands.TransitionReservationInput{To: reservation.StatusConfirmed})
		s.Require().NoError(err)
	})

	s.Run("cancellation sends no notification", func() {
		operator := builder.OperatorPrincipal()
		snap := builder.NewReservationBuilder().WithOwnerID(operator.ID).BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)
		s.repo.EXPECT().UpdateStatus(ctx, snap.ID, reservation.StatusCancelled, snap.Version).Return(nil)

		err := s.commands.TransitionStatus(ctx, operator, snap.ID,
			commands.TransitionReservationInput{To: reservation.StatusCancelled})
		s.Require().NoError(err)
	})

	s.Run("diner may not transition own reservation", func() {
		diner := builder.DinerPrincipal()
		snap := builder.NewReservationBuilder().WithDinerID(diner.ID).BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)

		err := s.commands.TransitionStatus(ctx, diner, snap.ID,
			commands.TransitionReservationInput{To: reservation.StatusCancelled})
		s.Require().ErrorIs(err, errs.ErrAccessDenied)
	})

	s.Run("operator of another restaurant is refused", func() {
		snap := builder.NewReservationBuilder().BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)

		err := s.commands.TransitionStatus(ctx, builder.OperatorPrincipal(), snap.ID,
			commands.TransitionReservationInput{To: reservation.StatusConfirmed})
		s.Require().ErrorIs(err, errs.ErrAccessDenied)
	})

	s.Run("illegal move is rejected before touching storage", func() {
		admin := builder.AdminPrincipal()
		snap := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)

		err := s.commands.TransitionStatus(ctx, admin, snap.ID,
			commands.TransitionReservationInput{To: reservation.StatusConfirmed})
		s.Require().ErrorIs(err, errs.ErrInvalidTransition)
	})

	s.Run("version mismatch surfaces as stale write", func() {
		admin := builder.AdminPrincipal()
		snap := builder.NewReservationBuilder().BuildSnapshot()
		stale := int64(1)

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)
		s.repo.EXPECT().UpdateStatus(ctx, snap.ID, reservation.StatusConfirmed, stale).
			Return(infra.WrapRepoErr("version changed", nil, infra.KindStaleWrite))

		err := s.commands.TransitionStatus(ctx, admin, snap.ID,
			commands.TransitionReservationInput{To: reservation.StatusConfirmed, Version: &stale})
		s.Require().ErrorIs(err, errs.ErrStaleWrite)
	})

	s.Run("missing reservation", func() {
		s.reads.EXPECT().ReservationByID(ctx, int64(404)).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		err := s.commands.TransitionStatus(ctx, builder.AdminPrincipal(), 404,
			commands.TransitionReservationInput{To: reservation.StatusConfirmed})
		s.Require().ErrorIs(err, errs.ErrReservationNotFound)
	})
}

func (s *ReservationCommandsTestSuite) TestReschedule() {
	ctx := context.Background()
	newAt := time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC)
	in := commands.RescheduleReservationInput{TableID: 11, At: newAt}

	s.Run("admin moves a reservation to a free slot", func() {
		snap := builder.NewReservationBuilder().BuildSnapshot()
		target := builder.NewTableBuilder().BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)
		s.reads.EXPECT().TableByID(ctx, int64(11)).Return(target, nil)
		s.reads.EXPECT().ActiveReservationExists(ctx, int64(11), newAt, snap.ID).Return(false, nil)
		s.repo.EXPECT().UpdateSlot(ctx, snap.ID, gomock.Any(), snap.Version).Return(nil)

		err := s.commands.Reschedule(ctx, builder.AdminPrincipal(), snap.ID, in)
		s.Require().NoError(err)
	})

	s.Run("operator may not reschedule even on own restaurant", func() {
		operator := builder.OperatorPrincipal()
		snap := builder.NewReservationBuilder().WithOwnerID(operator.ID).BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)

		err := s.commands.Reschedule(ctx, operator, snap.ID, in)
		s.Require().ErrorIs(err, errs.ErrAccessDenied)
	})

	s.Run("terminal reservations stay put", func() {
		snap := builder.NewReservationBuilder().WithStatus(reservation.StatusCompleted).BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)

		err := s.commands.Reschedule(ctx, builder.AdminPrincipal(), snap.ID, in)
		s.Require().ErrorIs(err, errs.ErrInvalidTransition)
	})

	s.Run("target slot already held", func() {
		snap := builder.NewReservationBuilder().BuildSnapshot()
		target := builder.NewTableBuilder().BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)
		s.reads.EXPECT().TableByID(ctx, int64(11)).Return(target, nil)
		s.reads.EXPECT().ActiveReservationExists(ctx, int64(11), newAt, snap.ID).Return(true, nil)

		err := s.commands.Reschedule(ctx, builder.AdminPrincipal(), snap.ID, in)
		s.Require().ErrorIs(err, errs.ErrSlotUnavailable)
	})

	s.Run("cannot reschedule into the past", func() {
		snap := builder.NewReservationBuilder().BuildSnapshot()
		past := commands.RescheduleReservationInput{TableID: 11, At: time.Date(2026, 2, 28, 20, 0, 0, 0, time.UTC)}

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)

		err := s.commands.Reschedule(ctx, builder.AdminPrincipal(), snap.ID, past)
		s.Require().ErrorIs(err, errs.ErrDomainValidation)
		s.Require().ErrorIs(err, reservation.ErrPastInstant)
	})
}

func (s *ReservationCommandsTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("admin deletes", func() {
		snap := builder.NewReservationBuilder().BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)
		s.repo.EXPECT().Delete(ctx, snap.ID).Return(nil)

		s.Require().NoError(s.commands.Delete(ctx, builder.AdminPrincipal(), snap.ID))
	})

	s.Run("diner may not delete own reservation", func() {
		diner := builder.DinerPrincipal()
		snap := builder.NewReservationBuilder().WithDinerID(diner.ID).BuildSnapshot()

		s.reads.EXPECT().ReservationByID(ctx, snap.ID).Return(snap, nil)

		err := s.commands.Delete(ctx, diner, snap.ID)
		s.Require().ErrorIs(err, errs.ErrAccessDenied)
	})
}
