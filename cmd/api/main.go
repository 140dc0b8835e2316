package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedule-interpreter/config"
	_ "schedule-interpreter/docs" // Swagger docs
	"schedule-interpreter/internal/grammar"
	"schedule-interpreter/internal/httpserver"
	"schedule-interpreter/internal/interpreter"
	calendarRepo "schedule-interpreter/internal/interpreter/repository/gcalendar"
	"schedule-interpreter/internal/interpreter/usecase"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/internal/scheduleio"
	"schedule-interpreter/pkg/datemath"
	"schedule-interpreter/pkg/gcalendar"
	"schedule-interpreter/pkg/log"
	"schedule-interpreter/pkg/ratelimit"
)

// @title       Schedule Interpreter API
// @description Croatian voice command interpreter for construction schedules.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Schedule Interpreter...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date math
	dateMathParser, err := datemath.NewParser(cfg.Interpreter.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Interpreter.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Grammar
	parser := grammar.New(profilesFromConfig(cfg.Grammar.Profiles)...)
	logger.Infof(ctx, "Grammar loaded with %d normative profiles", len(parser.Profiles()))

	// 5. Seed schedule (optional)
	var seed *model.Document
	if cfg.Schedule.SeedFile != "" {
		doc, seedErr := scheduleio.LoadFile(cfg.Schedule.SeedFile)
		if seedErr != nil {
			logger.Errorf(ctx, "Failed to load seed schedule: %v", seedErr)
			os.Exit(1)
		}
		doc = scheduleio.Touch(doc, time.Now())
		seed = &doc
		logger.Infof(ctx, "Seed schedule loaded: %d items from %s", len(doc.Items), cfg.Schedule.SeedFile)
	}

	// 6. Google Calendar sink (optional)
	var sink interpreter.PatchSink
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			sink = calendarRepo.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID)
			logger.Infof(ctx, "Google Calendar sink initialized for calendar %s", cfg.GoogleCalendar.CalendarID)
		}
	}

	// 7. Interpreter use case
	interpreterUC := usecase.New(logger, parser, dateMathParser, sink, usecase.Config{
		AliasPrefix:      cfg.Interpreter.AliasPrefix,
		QueueCapacity:    cfg.Interpreter.QueueCapacity,
		SessionCacheSize: cfg.Interpreter.SessionCacheSize,
		SessionTTL:       cfg.Interpreter.SessionTTL,
		Seed:             seed,
	})

	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.New(cfg.RateLimit.RequestsPerMin)
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		InterpreterUC: interpreterUC,
		Limiter:       limiter,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func profilesFromConfig(in []config.ProfileConfig) []grammar.Profile {
	profiles := make([]grammar.Profile, 0, len(in))
	for _, p := range in {
		profiles = append(profiles, grammar.Profile{
			ID:              p.ID,
			Names:           p.Names,
			StartOffsetDays: p.StartOffsetDays,
			EndOffsetDays:   p.EndOffsetDays,
		})
	}
	return profiles
}
