package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/punchsheet/punchsheet-backend-go/internal/handler/http/middleware"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, authHandler AuthHandler, timesheetHandler TimesheetHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "punchsheet"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/batches", func(r chi.Router) {
				r.Post("/", timesheetHandler.Import)
				r.Get("/", timesheetHandler.ListBatches)

				r.Route("/{batchID}", func(r chi.Router) {
					r.Get("/daily", timesheetHandler.GetDaily)
					r.Get("/summary", timesheetHandler.GetMonthlySummary)
					r.Get("/export/workbook", timesheetHandler.ExportWorkbook)
					r.Get("/export/summary.pdf", timesheetHandler.ExportSummaryPDF)
				})
			})
		})
	})
	return r
}
