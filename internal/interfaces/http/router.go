// Package http monta as rotas da API e os handlers Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acheileads/achei-leads-api/internal/application/auth"
	"github.com/acheileads/achei-leads-api/internal/application/billing"
	"github.com/acheileads/achei-leads-api/internal/application/enrich"
	"github.com/acheileads/achei-leads-api/internal/application/export"
	"github.com/acheileads/achei-leads-api/internal/application/search"
	"github.com/acheileads/achei-leads-api/internal/application/usecase"
)

// RouterDeps dependências injetadas na montagem das rotas.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CompanyUC *usecase.CompanyUseCase
	CRMUC     *usecase.CRMUseCase
	CreditUC  *usecase.CreditUseCase
	MessageUC *usecase.MessageUseCase
	SearchUC  *search.SearchUseCase
	ListasUC  *search.ListasUseCase
	EnrichUC  *enrich.EnrichUseCase
	PixUC     *billing.PixUseCase
	Watcher   *billing.Watcher
	ExportUC  *export.ExportUseCase
	JWTSecret string
}

// SetupRoutes registra todas as rotas da API.
func SetupRoutes(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Rotas públicas.
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Tudo abaixo exige Bearer Token.
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	protected.Get("/profile", authHandler.GetProfile)
	protected.Put("/profile", authHandler.UpdateProfile)

	searchHandler := NewSearchHandler(deps.SearchUC, deps.ListasUC)
	searchGroup := protected.Group("/search")
	searchGroup.Post("/cnae", searchHandler.ByCNAE)
	searchGroup.Post("/cnpj", searchHandler.ByCNPJ)
	searchGroup.Post("/cep", searchHandler.ByCEP)
	searchGroup.Post("/maps", searchHandler.ByMaps)

	listasGroup := protected.Group("/listas")
	listasGroup.Get("/cnaes", searchHandler.ListCNAEs)
	listasGroup.Get("/municipios", searchHandler.ListMunicipios)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	enrichHandler := NewEnrichHandler(deps.EnrichUC)
	crmHandler := NewCRMHandler(deps.CRMUC)
	companies := protected.Group("/companies")
	// Rotas fixas antes das parametrizadas.
	companies.Post("/import", companyHandler.Import)
	companies.Post("/bulk-delete", companyHandler.BulkDelete)
	companies.Post("/enrich-bulk", enrichHandler.EnrichBulk)
	companies.Get("", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Post("/:id/phones", companyHandler.AddPhone)
	companies.Post("/:id/enrich", enrichHandler.Enrich)
	companies.Put("/:id/stage", crmHandler.MoveCompany)
	companies.Get("/:id/stage-history", crmHandler.StageHistory)
	companies.Post("/:id/activities", crmHandler.CreateActivity)
	companies.Get("/:id/activities", crmHandler.ListActivities)

	protected.Put("/phones/:phoneId", companyHandler.UpdatePhone)
	protected.Delete("/phones/:phoneId", companyHandler.DeletePhone)

	crm := protected.Group("/crm")
	crm.Post("/stages", crmHandler.CreateStage)
	crm.Get("/stages", crmHandler.ListStages)
	crm.Put("/stages/reorder", crmHandler.ReorderStages)
	crm.Put("/stages/:id", crmHandler.UpdateStage)
	crm.Delete("/stages/:id", crmHandler.DeleteStage)
	crm.Get("/board", crmHandler.Board)
	crm.Get("/activities/pending", crmHandler.ListPendingActivities)
	crm.Put("/activities/:id", crmHandler.UpdateActivity)
	crm.Delete("/activities/:id", crmHandler.DeleteActivity)

	creditHandler := NewCreditHandler(deps.CreditUC)
	credits := protected.Group("/credits")
	credits.Get("/balance", creditHandler.Balance)
	credits.Get("/transactions", creditHandler.Transactions)
	credits.Get("/packages", creditHandler.Packages)

	paymentHandler := NewPaymentHandler(deps.PixUC, deps.Watcher)
	payments := protected.Group("/payments/pix")
	payments.Post("", paymentHandler.CreateCharge)
	payments.Get("/:id/status", paymentHandler.CheckStatus)
	payments.Get("/:id", paymentHandler.GetPayment)
	payments.Delete("/:id/watch", paymentHandler.StopWatch)

	messageHandler := NewMessageHandler(deps.MessageUC)
	messages := protected.Group("/messages")
	messages.Post("/templates", messageHandler.CreateTemplate)
	messages.Get("/templates", messageHandler.ListTemplates)
	messages.Put("/templates/:id", messageHandler.UpdateTemplate)
	messages.Delete("/templates/:id", messageHandler.DeleteTemplate)
	messages.Post("/render", messageHandler.Render)
	messages.Post("/send", messageHandler.Send)
	messages.Get("/history", messageHandler.History)

	exportHandler := NewExportHandler(deps.ExportUC)
	exportGroup := protected.Group("/export")
	exportGroup.Post("/csv", exportHandler.CSV)
	exportGroup.Post("/pdf", exportHandler.PDF)
}
