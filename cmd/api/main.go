package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dev2197/smart-task-manager/config"
	_ "github.com/Dev2197/smart-task-manager/docs" // Swagger docs
	"github.com/Dev2197/smart-task-manager/internal/extractor"
	llmExtractor "github.com/Dev2197/smart-task-manager/internal/extractor/openai"
	"github.com/Dev2197/smart-task-manager/internal/extractor/rulebased"
	"github.com/Dev2197/smart-task-manager/internal/httpserver"
	"github.com/Dev2197/smart-task-manager/internal/middleware"
	taskHTTP "github.com/Dev2197/smart-task-manager/internal/task/delivery/http"
	"github.com/Dev2197/smart-task-manager/internal/task/repository/inmem"
	"github.com/Dev2197/smart-task-manager/internal/task/usecase"
	"github.com/Dev2197/smart-task-manager/pkg/datemath"
	"github.com/Dev2197/smart-task-manager/pkg/gcalendar"
	"github.com/Dev2197/smart-task-manager/pkg/log"
	"github.com/Dev2197/smart-task-manager/pkg/openai"
)

// @title       Smart Task Manager API
// @description Natural-language task creation: free text like "Review the design doc by Alice June 20th 2pm P1" becomes structured tasks, with optional LLM-backed parsing and Google Calendar sync.
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

	logger.Info(ctx, "Starting Smart Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date math parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Parser.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Extraction strategies
	ruleBased := rulebased.New()

	var llmBacked extractor.Strategy
	if cfg.OpenAI.APIKey != "" {
		openaiClient, clientErr := openai.New(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
			Timeout: cfg.OpenAI.Timeout,
		})
		if clientErr != nil {
			logger.Warnf(ctx, "OpenAI client unavailable, running rule-based only: %v", clientErr)
		} else {
			llmBacked = llmExtractor.New(logger, openaiClient)
			logger.Info(ctx, "LLM-backed extraction enabled")
		}
	} else {
		logger.Info(ctx, "No OpenAI API key configured, running rule-based only")
	}

	// 5. Google Calendar client (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Task domain
	taskRepo := inmem.New(logger)
	taskUC := usecase.New(logger, taskRepo, ruleBased, llmBacked, calendarClient, dateMathParser, cfg.GoogleCalendar.CalendarID)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 7. HTTP Server
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
