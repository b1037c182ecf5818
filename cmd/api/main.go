package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/SamTech-crypto/audit-workflow-app/config"
	_ "github.com/SamTech-crypto/audit-workflow-app/docs" // Swagger docs
	"github.com/SamTech-crypto/audit-workflow-app/internal/httpserver"
	"github.com/SamTech-crypto/audit-workflow-app/internal/middleware"
	"github.com/SamTech-crypto/audit-workflow-app/internal/scheduler"
	workflowHTTP "github.com/SamTech-crypto/audit-workflow-app/internal/workflow/delivery/http"
	workflowRepo "github.com/SamTech-crypto/audit-workflow-app/internal/workflow/repository/postgre"
	workflowUC "github.com/SamTech-crypto/audit-workflow-app/internal/workflow/usecase"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/datemath"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/excel"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/gcalendar"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/log"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/mailer"
)

// @title       Audit Workflow API
// @description Audit task tracker with dependency DAG, email reminders, Excel reports, and Graphviz visualization.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Audit Workflow API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open Postgres: %v", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Fatalf(ctx, "Failed to ping Postgres: %v", err)
	}
	logger.Infof(ctx, "Connected to Postgres at %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)

	// 4. SMTP mailer
	smtpMailer := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	// 5. DateMath parser
	timezone := cfg.Reminder.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 6. Google Calendar client (optional)
	var calendarClient workflowUC.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gcalErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcalErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcalErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
			calendarClient = gcal
		}
	}

	// 7. Workflow domain
	repo := workflowRepo.New(db, logger)
	uc := workflowUC.New(logger, repo, smtpMailer, excel.NewWriter(), calendarClient, dateMathParser, workflowUC.Config{
		ReminderWindowDays: cfg.Reminder.WindowDays,
		CalendarID:         cfg.GoogleCalendar.CalendarID,
		Timezone:           timezone,
	})
	workflowHandler := workflowHTTP.New(logger, uc)

	// 8. Reminder schedule
	reminderScheduler, err := scheduler.New(logger, uc, cfg.Reminder.CronSpec, dateMathParser.Location())
	if err != nil {
		logger.Fatalf(ctx, "Invalid reminder cron spec %q: %v", cfg.Reminder.CronSpec, err)
	}
	reminderScheduler.Start()
	defer reminderScheduler.Stop()

	// 9. HTTP Server
	mw := middleware.New(logger, cfg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		WorkflowHandler: workflowHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
