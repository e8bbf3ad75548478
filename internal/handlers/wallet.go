package handlers

import (
	"mentormatch/internal/services/wallet"
	"mentormatch/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	w, err := h.walletService.GetWallet(c.Context(), claims.UserID)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "wallet", w)
}

func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	balance, err := h.walletService.GetBalance(c.Context(), claims.UserID)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "balance", fiber.Map{"balance": balance})
}

// Deposit performs a simulated top-up from a named source.
func (h *WalletHandler) Deposit(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var req struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
		Source string  `json:"source" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.walletService.Deposit(c.Context(), claims.UserID, req.Amount, req.Source)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "deposit successful", result)
}

// Withdraw performs a simulated withdrawal to a named destination.
func (h *WalletHandler) Withdraw(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var req struct {
		Amount      float64 `json:"amount" validate:"required,gt=0"`
		Destination string  `json:"destination" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.walletService.Withdraw(c.Context(), claims.UserID, req.Amount, req.Destination)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "withdrawal successful", result)
}

func (h *WalletHandler) GetTransactions(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	txns, err := h.walletService.GetTransactions(c.Context(), claims.UserID)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "transactions", txns)
}
