package main

import (
	"fmt"
	"log/slog"
	"os"

	"shipdesk/cmd"
	httpadapter "shipdesk/internal/adapters/in/http"
	"shipdesk/internal/adapters/out/postgres"
	"shipdesk/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateSweepExpiredDisputesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(httpadapter.ServerHandlers{
		CreateOrder:         app.CreateCreateOrderCommandHandler(),
		DispatchOrder:       app.CreateDispatchOrderCommandHandler(),
		SchedulePickup:      app.CreateSchedulePickupCommandHandler(),
		RecordTrackingEvent: app.CreateRecordTrackingEventCommandHandler(),
		CancelOrder:         app.CreateCancelOrderCommandHandler(),
		CloneOrder:          app.CreateCloneOrderCommandHandler(),
		DeleteOrder:         app.CreateDeleteOrderCommandHandler(),
		ReportFailedAttempt: app.CreateReportFailedAttemptCommandHandler(),
		ResolveIncident:     app.CreateResolveIncidentCommandHandler(),
		ReportWeightAudit:   app.CreateReportWeightAuditCommandHandler(),
		AcceptDispute:       app.CreateAcceptDisputeCommandHandler(),
		RaiseDispute:        app.CreateRaiseDisputeCommandHandler(),
		CreditWallet:        app.CreateCreditWalletCommandHandler(),
		RegisterMerchant:    app.CreateRegisterMerchantCommandHandler(),
		ListOrders:          app.CreateListOrdersQueryHandler(),
		GetOrder:            app.CreateGetOrderQueryHandler(),
		GetWalletBalance:    app.CreateGetWalletBalanceQueryHandler(),
		GetWalletStatement:  app.CreateGetWalletStatementQueryHandler(),
		ListOpenIncidents:   app.CreateListOpenIncidentsQueryHandler(),
		ListDisputes:        app.CreateListDisputesQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
