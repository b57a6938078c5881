package commands_test

import (
	"context"
	"fmt"
	"testing"

	"webshop/internal/core/application/usecases/commands"
	"webshop/internal/core/domain/model/casefile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveCaseCommandHandler_Handle(t *testing.T) {
	t.Run("should resolve case and notify the customer", func(t *testing.T) {
		ctx := context.Background()
		c := newOpenCase(t, casefile.TypeComplaint, fixedNow.Add(-1))

		caseRepo := new(MockCaseRepository)
		uow := new(MockCaseUoW)
		factory := new(MockCaseUoWFactory)
		notificationService := new(MockNotificationService)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CaseRepository").Return(caseRepo)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		caseRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
		caseRepo.On("Update", ctx, c).Return(nil).Once()

		message := fmt.Sprintf("Your case %s has been resolved: replacement shipped", c.CaseNumber())
		notificationService.On("SendStatusUpdate", ctx, c.CustomerID(), message).
			Return(nil).Once()

		handler := commands.NewResolveCaseCommandHandler(factory,
			notificationService, fixedClock, discardLogger())

		cmd, err := commands.NewResolveCaseCommand(c.ID(), "replacement shipped")
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, casefile.StatusResolved, c.Status())
		assert.Equal(t, "replacement shipped", c.Resolution())
		require.NotNil(t, c.ResolvedAt())
		assert.Equal(t, fixedNow, *c.ResolvedAt())
		notificationService.AssertExpectations(t)
	})

	t.Run("should fail for already closed case", func(t *testing.T) {
		ctx := context.Background()
		c := newOpenCase(t, casefile.TypeComplaint, fixedNow.Add(-1))
		require.NoError(t, c.Resolve("done", fixedNow))
		require.NoError(t, c.Close())

		caseRepo := new(MockCaseRepository)
		uow := new(MockCaseUoW)
		factory := new(MockCaseUoWFactory)
		notificationService := new(MockNotificationService)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CaseRepository").Return(caseRepo)
		uow.On("Rollback", ctx).Return(nil).Once()

		caseRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()

		handler := commands.NewResolveCaseCommandHandler(factory,
			notificationService, fixedClock, discardLogger())

		cmd, err := commands.NewResolveCaseCommand(c.ID(), "again")
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		caseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		notificationService.AssertNotCalled(t, "SendStatusUpdate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fail without resolution text", func(t *testing.T) {
		c := newOpenCase(t, casefile.TypeComplaint, fixedNow.Add(-1))

		_, err := commands.NewResolveCaseCommand(c.ID(), "")

		require.ErrorIs(t, err, commands.ErrResolutionIsRequired)
	})
}
