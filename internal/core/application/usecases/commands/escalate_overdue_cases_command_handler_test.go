package commands_test

import (
	"context"
	"testing"
	"time"

	"webshop/internal/core/application/usecases/commands"
	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEscalateOverdueCasesCommandHandler_Handle(t *testing.T) {
	t.Run("should escalate cases open for more than 48 hours", func(t *testing.T) {
		ctx := context.Background()
		overdue := newOpenCase(t, casefile.TypeGeneralInquiry, fixedNow.Add(-49*time.Hour))
		fresh := newOpenCase(t, casefile.TypeGeneralInquiry, fixedNow.Add(-time.Hour))

		caseRepo := new(MockCaseRepository)
		uow := new(MockCaseUoW)
		factory := new(MockCaseUoWFactory)
		notificationService := new(MockNotificationService)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CaseRepository").Return(caseRepo)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		caseRepo.On("GetAllInOpenStatus", ctx).
			Return([]*casefile.Case{overdue, fresh}, nil).Once()
		caseRepo.On("Update", ctx, overdue).Return(nil).Once()
		caseRepo.On("Update", ctx, fresh).Return(nil).Once()
		notificationService.On("SendEscalationAlert", ctx, overdue).Return(nil).Once()

		handler := commands.NewEscalateOverdueCasesCommandHandler(factory,
			services.NewCaseService(fixedClock), notificationService, fixedClock, discardLogger())

		err := handler.Handle(ctx, commands.NewEscalateOverdueCasesCommand())

		require.NoError(t, err)
		assert.Equal(t, casefile.StatusEscalated, overdue.Status())
		assert.Equal(t, casefile.PriorityHigh, overdue.Priority())
		assert.Equal(t, casefile.StatusOpen, fresh.Status())
		assert.Equal(t, casefile.PriorityLow, fresh.Priority())
		caseRepo.AssertExpectations(t)
		notificationService.AssertExpectations(t)
	})

	t.Run("should keep an agent-set priority that outranks the computed one", func(t *testing.T) {
		ctx := context.Background()
		critical := newOpenCase(t, casefile.TypeGeneralInquiry, fixedNow.Add(-time.Hour))
		require.NoError(t, critical.Prioritize(casefile.PriorityCritical))
		high := newOpenCase(t, casefile.TypeGeneralInquiry, fixedNow.Add(-time.Hour))
		require.NoError(t, high.Prioritize(casefile.PriorityHigh))

		caseRepo := new(MockCaseRepository)
		uow := new(MockCaseUoW)
		factory := new(MockCaseUoWFactory)
		notificationService := new(MockNotificationService)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CaseRepository").Return(caseRepo)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		caseRepo.On("GetAllInOpenStatus", ctx).
			Return([]*casefile.Case{critical, high}, nil).Once()
		caseRepo.On("Update", ctx, critical).Return(nil).Once()
		caseRepo.On("Update", ctx, high).Return(nil).Once()

		handler := commands.NewEscalateOverdueCasesCommandHandler(factory,
			services.NewCaseService(fixedClock), notificationService, fixedClock, discardLogger())

		err := handler.Handle(ctx, commands.NewEscalateOverdueCasesCommand())

		require.NoError(t, err)
		assert.Equal(t, casefile.PriorityCritical, critical.Priority())
		assert.Equal(t, casefile.PriorityHigh, high.Priority())
		assert.Equal(t, casefile.StatusOpen, critical.Status())
		assert.Equal(t, casefile.StatusOpen, high.Status())
		notificationService.AssertNotCalled(t, "SendEscalationAlert", mock.Anything, mock.Anything)
	})

	t.Run("should keep a critical priority on an overdue case through escalation", func(t *testing.T) {
		ctx := context.Background()
		overdue := newOpenCase(t, casefile.TypeGeneralInquiry, fixedNow.Add(-49*time.Hour))
		require.NoError(t, overdue.Prioritize(casefile.PriorityCritical))

		caseRepo := new(MockCaseRepository)
		uow := new(MockCaseUoW)
		factory := new(MockCaseUoWFactory)
		notificationService := new(MockNotificationService)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CaseRepository").Return(caseRepo)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		caseRepo.On("GetAllInOpenStatus", ctx).
			Return([]*casefile.Case{overdue}, nil).Once()
		caseRepo.On("Update", ctx, overdue).Return(nil).Once()
		notificationService.On("SendEscalationAlert", ctx, overdue).Return(nil).Once()

		handler := commands.NewEscalateOverdueCasesCommandHandler(factory,
			services.NewCaseService(fixedClock), notificationService, fixedClock, discardLogger())

		err := handler.Handle(ctx, commands.NewEscalateOverdueCasesCommand())

		require.NoError(t, err)
		assert.Equal(t, casefile.StatusEscalated, overdue.Status())
		assert.Equal(t, casefile.PriorityCritical, overdue.Priority())
		notificationService.AssertExpectations(t)
	})

	t.Run("should do nothing when no open cases exist", func(t *testing.T) {
		ctx := context.Background()

		caseRepo := new(MockCaseRepository)
		uow := new(MockCaseUoW)
		factory := new(MockCaseUoWFactory)
		notificationService := new(MockNotificationService)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CaseRepository").Return(caseRepo)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		caseRepo.On("GetAllInOpenStatus", ctx).Return([]*casefile.Case{}, nil).Once()

		handler := commands.NewEscalateOverdueCasesCommandHandler(factory,
			services.NewCaseService(fixedClock), notificationService, fixedClock, discardLogger())

		err := handler.Handle(ctx, commands.NewEscalateOverdueCasesCommand())

		require.NoError(t, err)
		notificationService.AssertNotCalled(t, "SendEscalationAlert", mock.Anything, mock.Anything)
	})
}
