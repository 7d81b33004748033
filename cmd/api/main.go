package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "github.com/ChristianKamdemLab/ckmoney/internal/adapter/http"
	mw "github.com/ChristianKamdemLab/ckmoney/internal/adapter/middleware"
	"github.com/ChristianKamdemLab/ckmoney/internal/adapter/repository/mysql"
	"github.com/ChristianKamdemLab/ckmoney/internal/config"
	"github.com/ChristianKamdemLab/ckmoney/internal/contract"
	"github.com/ChristianKamdemLab/ckmoney/internal/infrastructure/cache"
	"github.com/ChristianKamdemLab/ckmoney/internal/infrastructure/db"
	"github.com/ChristianKamdemLab/ckmoney/internal/logging"
	"github.com/ChristianKamdemLab/ckmoney/internal/notifier"
	"github.com/ChristianKamdemLab/ckmoney/internal/rates"
	dashboarduc "github.com/ChristianKamdemLab/ckmoney/internal/usecase/dashboard"
	loanuc "github.com/ChristianKamdemLab/ckmoney/internal/usecase/loan"
	notifuc "github.com/ChristianKamdemLab/ckmoney/internal/usecase/notification"
	"github.com/ChristianKamdemLab/ckmoney/internal/usecase/reminder"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	notifRepo := mysql.NewNotificationRepository(gdb)

	// External collaborators, all with graceful degradation paths.
	converter := rates.NewNormalizer(
		rates.NewClient(cfg.RatesBaseURL, cfg.RatesTimeout), cfg.ReportingCurrency, logger)
	var remoteGen contract.Generator
	if cfg.ContractGenURL != "" {
		remoteGen = contract.NewRemoteGenerator(cfg.ContractGenURL, cfg.ContractGenTimeout)
	}
	assembler := contract.NewAssembler(remoteGen, logger)

	var mailer reminder.Mailer
	if cfg.SMTPEnabled() {
		mailer = notifier.NewEmailNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}

	loanUC := loanuc.NewUsecase(loanRepo, assembler)
	notifUC := notifuc.NewUsecase(notifRepo)
	dashUC := dashboarduc.NewUsecase(converter)
	engine := reminder.NewEngine(notifRepo, mailer, logger)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(loanUC)
	dh := httpadp.NewDashboardHandler(loanRepo, dashUC)
	nh := httpadp.NewNotificationHandler(loanRepo, notifUC, engine)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	idemp := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	loans := e.Group("/loans", idemp)
	loans.POST("", lh.CreateLoan)
	loans.GET("", lh.ListLoans)
	loans.GET("/:loan_id", lh.GetLoan)
	loans.POST("/:loan_id/sign", lh.SignLoan)
	loans.POST("/:loan_id/claim", lh.ClaimRepayment)
	loans.POST("/:loan_id/confirm", lh.ConfirmRepayment)
	loans.POST("/:loan_id/dispute", lh.DisputeRepayment)

	e.GET("/dashboard/summary", dh.Summary)

	// Reminder refresh is idempotent by its cooldown dedup, not by header.
	e.POST("/notifications/refresh", nh.Refresh)
	e.GET("/notifications", nh.List)
	e.PATCH("/notifications/:notification_id/read", nh.MarkRead)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
