package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	requestHandler RequestHandler,
	workflowHandler WorkflowHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:4200"},
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

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Put("/{id}", employeeHandler.UpdateEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)
			r.Post("/{id}/transfer", employeeHandler.TransferEmployee)
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", departmentHandler.ListDepartments)
			r.Post("/", departmentHandler.CreateDepartment)
			r.Get("/counts", departmentHandler.DepartmentCounts)
			r.Get("/{id}", departmentHandler.GetDepartment)
			r.Put("/{id}", departmentHandler.UpdateDepartment)
			r.Delete("/{id}", departmentHandler.DeleteDepartment)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Get("/", requestHandler.ListRequests)
			r.Post("/", requestHandler.CreateRequest)
			r.Get("/employee/{employeeId}", requestHandler.GetByEmployeeID)
			r.Get("/{id}", requestHandler.GetRequest)
			r.Put("/{id}", requestHandler.UpdateRequest)
			r.Delete("/{id}", requestHandler.DeleteRequest)
			r.Put("/{id}/approve", requestHandler.ApproveRequest)
			r.Put("/{id}/reject", requestHandler.RejectRequest)
		})

		r.Route("/workflows", func(r chi.Router) {
			r.Get("/", workflowHandler.ListWorkflows)
			r.Post("/", workflowHandler.CreateWorkflow)
			r.Get("/employee/{employeeId}", workflowHandler.GetByEmployeeID)
			r.Get("/{id}", workflowHandler.GetWorkflow)
			r.Put("/{id}", workflowHandler.UpdateWorkflow)
			r.Delete("/{id}", workflowHandler.DeleteWorkflow)
			r.Put("/{id}/status", workflowHandler.UpdateStatus)
		})
	})
	return r
}
