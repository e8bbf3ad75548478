package handlers

import (
	"mentormatch/internal/models"
	"mentormatch/internal/services/schedule"
	"mentormatch/internal/services/settlement"
	"mentormatch/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ScheduleHandler struct {
	scheduleService   schedule.Service
	settlementService settlement.Service
}

func NewScheduleHandler(scheduleService schedule.Service, settlementService settlement.Service) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService:   scheduleService,
		settlementService: settlementService,
	}
}

// CreateProposal lets a tutor submit a multi-slot booking proposal.
func (h *ScheduleHandler) CreateProposal(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var req schedule.ProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.scheduleService.CreateProposal(c.Context(), claims.UserID, req)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Created(c, "proposal created", result)
}

func (h *ScheduleHandler) GetProposal(c *fiber.Ctx) error {
	groupID := c.Params("groupId")
	if groupID == "" {
		return response.BadRequest(c, "group id is required")
	}

	details, err := h.scheduleService.GetProposalDetails(c.Context(), groupID)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "proposal details", details)
}

// ConfirmPayment settles a pending booking group from the caller's wallet.
func (h *ScheduleHandler) ConfirmPayment(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var req struct {
		GroupID string `json:"group_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.settlementService.PayAndConfirm(c.Context(), claims.UserID, req.GroupID)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, result.Message, result)
}

func (h *ScheduleHandler) RejectProposal(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var req struct {
		GroupID string `json:"group_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	cancelled, err := h.scheduleService.RejectProposal(c.Context(), claims.UserID, req.GroupID)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "proposal rejected", cancelled)
}

func (h *ScheduleHandler) UpdateStatus(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	scheduleID, err := c.ParamsInt("scheduleId")
	if err != nil || scheduleID <= 0 {
		return response.BadRequest(c, "invalid schedule id")
	}

	var req struct {
		Status models.ScheduleStatus `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	updated, err := h.scheduleService.UpdateStatus(c.Context(), uint(scheduleID), claims.UserID, req.Status)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "schedule updated", updated)
}

// GetMySchedule lists the caller's schedules, filtered by their role.
func (h *ScheduleHandler) GetMySchedule(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	schedules, err := h.scheduleService.GetScheduleForUser(c.Context(), claims.UserID, claims.Role)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "schedules", schedules)
}
