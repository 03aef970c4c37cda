package http

import (
	"log/slog"
	"os"

	"github.com/Joseph2303/ProyectoPSS/internal/handler/http/middleware"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	markHandler MarkHandler,
	reportHandler ReportHandler,
	masterHandler MasterHandler,
	scheduleHandler ScheduleHandler,
	employeeHandler EmployeeHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presencia"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/token", authHandler.IssueToken)

		// Token in query string, validated inside the handler.
		r.Get("/events", eventsHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/sse-token", authHandler.IssueSSEToken)

			r.Get("/board", markHandler.Board)

			r.Route("/marks", func(r chi.Router) {
				r.Get("/", markHandler.List)
				r.Post("/", markHandler.CreateGeneric)
				r.Post("/shift-in", markHandler.ShiftIn)
				r.Post("/shift-out", markHandler.ShiftOut)
				r.Post("/breaks/toggle", markHandler.ToggleBreak)
				r.Put("/{id}", markHandler.Update)
				r.Post("/{id}/close", markHandler.Close)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", reportHandler.List)
				r.Put("/{id}", reportHandler.UpdateNotes)
				r.Delete("/", reportHandler.Clear)
			})

			r.Route("/turns", func(r chi.Router) {
				r.Get("/", masterHandler.ListTurns)
				r.Post("/", masterHandler.CreateTurn)
				r.Get("/{id}", masterHandler.GetTurn)
				r.Put("/{id}", masterHandler.UpdateTurn)
				r.Delete("/{id}", masterHandler.DeleteTurn)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Post("/", scheduleHandler.Create)
				r.Put("/{id}", scheduleHandler.Update)
				r.Delete("/{id}", scheduleHandler.Delete)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/positions", func(r chi.Router) {
				r.Get("/", masterHandler.ListPositions)
				r.Post("/", masterHandler.CreatePosition)
				r.Put("/{id}", masterHandler.UpdatePosition)
				r.Delete("/{id}", masterHandler.DeletePosition)
			})
		})
	})
	return r
}
