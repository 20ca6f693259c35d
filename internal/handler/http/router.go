package http

import (
	"log/slog"
	"os"

	"github.com/fleetworks/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/fleetworks/timesheet-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	equipmentHandler EquipmentHandler,
	timesheetHandler TimesheetHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fleetworks-timesheet"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
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

			r.Route("/equipments", func(r chi.Router) {
				r.Get("/", equipmentHandler.List)
				r.Post("/{equipmentID}/timesheet-sessions", timesheetHandler.OpenSession)
			})

			r.Route("/timesheet-sessions/{sessionID}", func(r chi.Router) {
				r.Get("/view", timesheetHandler.GetView)
				r.Put("/cells", timesheetHandler.EditCell)
				r.Post("/cells/clear", timesheetHandler.ClearCell)
				r.Post("/work-types", timesheetHandler.AddWorkType)
				r.Post("/save", timesheetHandler.Save)
				r.Delete("/", timesheetHandler.CloseSession)
			})
		})
	})
	return r
}
