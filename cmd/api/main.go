package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/punchsheet/punchsheet-backend-go/internal/config"
	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
	appHTTP "github.com/punchsheet/punchsheet-backend-go/internal/handler/http"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/database"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/jwt"
	"github.com/punchsheet/punchsheet-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/punchsheet/punchsheet-backend-go/internal/service/auth"
	serviceTimesheet "github.com/punchsheet/punchsheet-backend-go/internal/service/timesheet"
	"github.com/punchsheet/punchsheet-backend-go/internal/service/watch"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	ctx := context.Background()
	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		log.Fatal("Failed to apply database schema: ", err)
	}

	segments, err := cfg.SegmentConfig()
	if err != nil {
		log.Fatal("Invalid segment configuration: ", err)
	}

	lexicon := timesheet.DefaultLexicon()
	if cfg.Import.LexiconFile != "" {
		lexicon, err = timesheet.LoadLexicon(cfg.Import.LexiconFile)
		if err != nil {
			log.Fatal("Failed to load lexicon file: ", err)
		}
	}

	batchRepo := postgresql.NewBatchRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	engine := serviceTimesheet.NewEngine(segments, lexicon)
	timesheetService := serviceTimesheet.NewTimesheetService(db, engine, batchRepo)
	authService := serviceAuth.NewAuthService(JWTService, cfg.Auth.ReviewerUsername, cfg.Auth.ReviewerPasswordHash)

	if cfg.Import.WatchDir != "" {
		watcher := watch.New(cfg.Import.WatchDir, timesheetService)
		if err := watcher.Backfill(ctx); err != nil {
			log.Fatal("Failed to backfill watch folder: ", err)
		}
		if err := watcher.Start(ctx); err != nil {
			log.Fatal("Failed to start watch folder: ", err)
		}
	}

	authHandler := appHTTP.NewAuthHandler(authService)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetService)

	router := appHTTP.NewRouter(JWTService, authHandler, timesheetHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
