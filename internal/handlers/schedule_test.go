package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	domain "mentormatch/internal/errors"
	"mentormatch/internal/models"
	"mentormatch/internal/services/schedule"
	"mentormatch/internal/services/settlement"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) CreateProposal(ctx context.Context, tutorID uint, req schedule.ProposalRequest) (*schedule.ProposalResult, error) {
	args := m.Called(tutorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.ProposalResult), args.Error(1)
}

func (m *MockScheduleService) GetProposalDetails(ctx context.Context, groupID string) (*schedule.ProposalDetails, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.ProposalDetails), args.Error(1)
}

func (m *MockScheduleService) RejectProposal(ctx context.Context, userID uint, groupID string) ([]models.Schedule, error) {
	args := m.Called(userID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Schedule), args.Error(1)
}

func (m *MockScheduleService) UpdateStatus(ctx context.Context, scheduleID, userID uint, status models.ScheduleStatus) (*models.Schedule, error) {
	args := m.Called(scheduleID, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Schedule), args.Error(1)
}

func (m *MockScheduleService) GetScheduleForUser(ctx context.Context, userID uint, role string) ([]models.Schedule, error) {
	args := m.Called(userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Schedule), args.Error(1)
}

type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) PayAndConfirm(ctx context.Context, studentID uint, groupID string) (*settlement.Result, error) {
	args := m.Called(studentID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlement.Result), args.Error(1)
}

func newTestApp(h *ScheduleHandler, claims *models.UserClaims) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("claims", claims)
		return c.Next()
	})
	app.Post("/schedules/proposals/confirm-payment", h.ConfirmPayment)
	app.Post("/schedules/proposals/reject", h.RejectProposal)
	app.Get("/schedules/proposals/:groupId", h.GetProposal)
	return app
}

func TestConfirmPaymentStatusMapping(t *testing.T) {
	claims := &models.UserClaims{UserID: 3, Role: models.RoleStudent}

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "conflict on double payment", serviceErr: domain.ErrAlreadyConfirmed, wantStatus: fiber.StatusConflict},
		{name: "payment required on low balance", serviceErr: domain.ErrInsufficientBalance, wantStatus: fiber.StatusPaymentRequired},
		{name: "not found on missing group", serviceErr: domain.ErrProposalNotFound, wantStatus: fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settlements := new(MockSettlementService)
			settlements.On("PayAndConfirm", uint(3), "GRP-1").Return(nil, tt.serviceErr)

			app := newTestApp(NewScheduleHandler(new(MockScheduleService), settlements), claims)
			req := httptest.NewRequest("POST", "/schedules/proposals/confirm-payment",
				strings.NewReader(`{"group_id":"GRP-1"}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}

	t.Run("success returns total amount", func(t *testing.T) {
		settlements := new(MockSettlementService)
		settlements.On("PayAndConfirm", uint(3), "GRP-1").
			Return(&settlement.Result{Message: "payment successful", TotalAmount: 200000}, nil)

		app := newTestApp(NewScheduleHandler(new(MockScheduleService), settlements), claims)
		req := httptest.NewRequest("POST", "/schedules/proposals/confirm-payment",
			strings.NewReader(`{"group_id":"GRP-1"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Message string `json:"message"`
			Data    struct {
				TotalAmount float64 `json:"total_amount"`
			} `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "payment successful", body.Message)
		assert.Equal(t, float64(200000), body.Data.TotalAmount)
	})

	t.Run("missing group id is a bad request", func(t *testing.T) {
		app := newTestApp(NewScheduleHandler(new(MockScheduleService), new(MockSettlementService)), claims)
		req := httptest.NewRequest("POST", "/schedules/proposals/confirm-payment",
			strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRejectProposalStatusMapping(t *testing.T) {
	claims := &models.UserClaims{UserID: 42, Role: models.RoleStudent}

	schedules := new(MockScheduleService)
	schedules.On("RejectProposal", uint(42), "GRP-1").Return(nil, domain.ErrNotParticipant)

	app := newTestApp(NewScheduleHandler(schedules, new(MockSettlementService)), claims)
	req := httptest.NewRequest("POST", "/schedules/proposals/reject",
		strings.NewReader(`{"group_id":"GRP-1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
