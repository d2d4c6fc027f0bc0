package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/corehr/workforce-backend-go/internal/config"
	appHTTP "github.com/corehr/workforce-backend-go/internal/handler/http"
	"github.com/corehr/workforce-backend-go/internal/pkg/database"
	"github.com/corehr/workforce-backend-go/internal/repository/postgresql"
	departmentService "github.com/corehr/workforce-backend-go/internal/service/department"
	employeeService "github.com/corehr/workforce-backend-go/internal/service/employee"
	requestService "github.com/corehr/workforce-backend-go/internal/service/request"
	workflowService "github.com/corehr/workforce-backend-go/internal/service/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal("Error migrating database: ", err)
	}

	accountRepo := postgresql.NewAccountRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	requestItemRepo := postgresql.NewRequestItemRepository(db)
	workflowRepo := postgresql.NewWorkflowRepository(db)

	workflowSvc := workflowService.NewWorkflowService(db, workflowRepo, employeeRepo, departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, departmentRepo, accountRepo, workflowSvc)
	requestSvc := requestService.NewRequestService(db, requestRepo, requestItemRepo, employeeRepo, accountRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)
	workflowHandler := appHTTP.NewWorkflowHandler(workflowSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		employeeHandler,
		departmentHandler,
		requestHandler,
		workflowHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
