package main

import (
	"fmt"
	"net/http"

	"github.com/fleetworks/timesheet-backend-go/internal/config"
	appHTTP "github.com/fleetworks/timesheet-backend-go/internal/handler/http"
	"github.com/fleetworks/timesheet-backend-go/internal/pkg/database"
	"github.com/fleetworks/timesheet-backend-go/internal/pkg/jwt"
	"github.com/fleetworks/timesheet-backend-go/internal/repository/postgresql"
	authService "github.com/fleetworks/timesheet-backend-go/internal/service/auth"
	equipmentService "github.com/fleetworks/timesheet-backend-go/internal/service/equipment"
	timesheetService "github.com/fleetworks/timesheet-backend-go/internal/service/timesheet"
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

	workEntryRepo := postgresql.NewWorkEntryRepository(db)
	equipmentRepo := postgresql.NewEquipmentRepository(db)
	operatorRepo := postgresql.NewOperatorRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(operatorRepo, JWTService)
	equipmentSvc := equipmentService.NewEquipmentService(equipmentRepo)
	timesheetSvc := timesheetService.NewTimesheetService(workEntryRepo, equipmentRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	equipmentHandler := appHTTP.NewEquipmentHandler(equipmentSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		equipmentHandler,
		timesheetHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
