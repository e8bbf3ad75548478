// Package routes defines the API routing configuration. It wires
// repositories into services, services into handlers, and handlers into
// route groups with the required middleware.
package routes

import (
	"mentormatch/internal/handlers"
	"mentormatch/internal/middleware"
	"mentormatch/internal/models"
	"mentormatch/internal/repositories"
	"mentormatch/internal/services/schedule"
	"mentormatch/internal/services/settlement"
	"mentormatch/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	walletRepo := repositories.NewWalletRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)
	tutorRepo := repositories.NewTutorRepository(db)

	var cache repositories.WalletCache = repositories.NoopWalletCache{}
	if repositories.RedisClient != nil {
		cache = repositories.NewWalletCache(repositories.RedisClient)
	}

	walletService := wallet.NewService(walletRepo, cache)
	scheduleService := schedule.NewService(scheduleRepo, tutorRepo)
	settlementService := settlement.NewService(repositories.NewTxManager(db), cache)

	walletHandler := handlers.NewWalletHandler(walletService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, settlementService)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	schedules := api.Group("/schedules", middleware.Auth)
	schedules.Get("/", scheduleHandler.GetMySchedule)
	schedules.Post("/proposals", middleware.RequireRole(models.RoleTutor), scheduleHandler.CreateProposal)
	schedules.Get("/proposals/:groupId", scheduleHandler.GetProposal)
	schedules.Post("/proposals/confirm-payment", middleware.RequireRole(models.RoleStudent), scheduleHandler.ConfirmPayment)
	schedules.Post("/proposals/reject", scheduleHandler.RejectProposal)
	schedules.Patch("/:scheduleId/status", scheduleHandler.UpdateStatus)

	wallets := api.Group("/wallet", middleware.Auth)
	wallets.Get("/", walletHandler.GetWallet)
	wallets.Get("/balance", walletHandler.GetBalance)
	wallets.Get("/transactions", walletHandler.GetTransactions)
	wallets.Post("/deposit", walletHandler.Deposit)
	wallets.Post("/withdraw", walletHandler.Withdraw)
}
