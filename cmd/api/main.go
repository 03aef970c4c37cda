package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/Joseph2303/ProyectoPSS/internal/config"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/schedule"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/fixtures"
	appHTTP "github.com/Joseph2303/ProyectoPSS/internal/handler/http"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/clock"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/cron"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/database"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/jwt"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/sse"
	"github.com/Joseph2303/ProyectoPSS/internal/repository/memory"
	"github.com/Joseph2303/ProyectoPSS/internal/repository/postgresql"
	authService "github.com/Joseph2303/ProyectoPSS/internal/service/auth"
	employeeService "github.com/Joseph2303/ProyectoPSS/internal/service/employee"
	markService "github.com/Joseph2303/ProyectoPSS/internal/service/mark"
	masterService "github.com/Joseph2303/ProyectoPSS/internal/service/master"
	reportService "github.com/Joseph2303/ProyectoPSS/internal/service/report"
	scheduleService "github.com/Joseph2303/ProyectoPSS/internal/service/schedule"
)

type repositories struct {
	turn     turn.Repository
	schedule schedule.Repository
	employee employee.Repository
	position master.PositionRepository
	mark     mark.Repository
	report   report.Repository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var repos repositories
	switch cfg.App.StorageType {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		repos = repositories{
			turn:     postgresql.NewTurnRepository(db),
			schedule: postgresql.NewScheduleRepository(db),
			employee: postgresql.NewEmployeeRepository(db),
			position: postgresql.NewPositionRepository(db),
			mark:     postgresql.NewMarkRepository(db),
			report:   postgresql.NewReportRepository(db),
		}
	case "memory":
		store := memory.NewStore()
		repos = repositories{
			turn:     memory.NewTurnRepository(store),
			schedule: memory.NewScheduleRepository(store),
			employee: memory.NewEmployeeRepository(store),
			position: memory.NewPositionRepository(store),
			mark:     memory.NewMarkRepository(store),
			report:   memory.NewReportRepository(store),
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.App.StorageType)
	}

	if err := fixtures.SeedSampleData(context.Background(), repos.turn, repos.position, repos.employee); err != nil {
		log.Fatal("Failed to seed sample data: ", err)
	}

	clk := clock.System()
	hub := sse.NewHub()

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	reportSvc := reportService.NewReportService(repos.report, repos.mark, repos.employee, repos.position, repos.turn, clk, hub)
	markSvc := markService.NewMarkService(repos.mark, repos.employee, repos.schedule, repos.turn, reportSvc, clk, hub)
	masterSvc := masterService.NewMasterService(repos.turn, repos.position, repos.employee)
	scheduleSvc := scheduleService.NewScheduleService(repos.schedule, repos.employee, repos.turn)
	employeeSvc := employeeService.NewEmployeeService(repos.employee, repos.position)
	authSvc := authService.NewAuthService(jwtService, cfg.Kiosk.PasscodeHash)

	scheduler := cron.NewScheduler()
	autoTag := cron.NewAutoTagJobs(repos.employee, repos.schedule, repos.turn, repos.mark, reportSvc, clk, hub)
	autoTag.RegisterJobs(scheduler, cfg.App.AutoTagInterval)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	markHandler := appHTTP.NewMarkHandler(markSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub, jwtService)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		markHandler,
		reportHandler,
		masterHandler,
		scheduleHandler,
		employeeHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
