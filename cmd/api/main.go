package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	zlog "github.com/rs/zerolog/log"

	"github.com/acheileads/achei-leads-api/internal/application/auth"
	"github.com/acheileads/achei-leads-api/internal/application/billing"
	"github.com/acheileads/achei-leads-api/internal/application/enrich"
	"github.com/acheileads/achei-leads-api/internal/application/export"
	"github.com/acheileads/achei-leads-api/internal/application/search"
	"github.com/acheileads/achei-leads-api/internal/application/usecase"
	infraai "github.com/acheileads/achei-leads-api/internal/infrastructure/ai"
	"github.com/acheileads/achei-leads-api/internal/infrastructure/cache"
	infrapdf "github.com/acheileads/achei-leads-api/internal/infrastructure/pdf"
	"github.com/acheileads/achei-leads-api/internal/infrastructure/postgres"
	"github.com/acheileads/achei-leads-api/internal/infrastructure/provider"
	httpRouter "github.com/acheileads/achei-leads-api/internal/interfaces/http"
	"github.com/acheileads/achei-leads-api/pkg/config"
	"github.com/acheileads/achei-leads-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexão ao PostgreSQL")
		os.Exit(1)
	}
	defer pool.Close()

	redisClient := cache.New(
		cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	)
	defer redisClient.Close()

	// Repositórios
	profileRepo := postgres.NewProfileRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	phoneRepo := postgres.NewPhoneRepository(pool)
	stageRepo := postgres.NewStageRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	creditRepo := postgres.NewCreditRepository(pool)
	packageRepo := postgres.NewCreditPackageRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	referenceRepo := postgres.NewReferenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Provedores externos
	casaDosDados := provider.NewCasaDosDadosClient(cfg.Providers.CasaDosDadosURL, cfg.Providers.CasaDosDadosKey)
	cnpja := provider.NewCNPJAClient(cfg.Providers.CNPJAURL, cfg.Providers.CNPJAKey)
	serper := provider.NewSerperClient(cfg.Providers.SerperURL, cfg.Providers.SerperKey)
	abacatePay := provider.NewAbacatePayClient(cfg.Providers.PixURL, cfg.Providers.PixKey)
	openAI := infraai.NewOpenAIService(cfg.Providers.OpenAIURL, cfg.Providers.OpenAIKey, cfg.Providers.OpenAIModel)

	// Casos de uso
	authUC := auth.NewAuthUseCase(profileRepo, creditRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Credits.WelcomeBonus)
	companyUC := usecase.NewCompanyUseCase(companyRepo, phoneRepo, creditRepo, txRunner)
	crmUC := usecase.NewCRMUseCase(stageRepo, companyRepo, activityRepo)
	creditUC := usecase.NewCreditUseCase(creditRepo, packageRepo)
	messageUC := usecase.NewMessageUseCase(messageRepo, companyRepo, phoneRepo)
	searchUC := search.NewSearchUseCase(redisClient, auditRepo, casaDosDados, cnpja, serper)
	listasUC := search.NewListasUseCase(referenceRepo, redisClient)
	enrichUC := enrich.NewEnrichUseCase(companyRepo, serper, openAI, txRunner, zlog.Logger)
	pixUC := billing.NewPixUseCase(paymentRepo, packageRepo, abacatePay, txRunner)
	watcher := billing.NewWatcher(pixUC, paymentRepo, zlog.Logger)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	exportUC := export.NewExportUseCase(companyRepo, phoneRepo, profileRepo, pdfGenerator)

	// Cobranças pendentes voltam a ser acompanhadas após um restart.
	if err := watcher.ResumePending(); err != nil {
		log.Warn().Err(err).Msg("retomar watchers de PIX")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Achei Leads API",
	}))

	httpRouter.SetupRoutes(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CompanyUC: companyUC,
		CRMUC:     crmUC,
		CreditUC:  creditUC,
		MessageUC: messageUC,
		SearchUC:  searchUC,
		ListasUC:  listasUC,
		EnrichUC:  enrichUC,
		PixUC:     pixUC,
		Watcher:   watcher,
		ExportUC:  exportUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	watcher.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
