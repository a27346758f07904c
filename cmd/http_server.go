package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/vehicle-ledger/internal"
	"github.com/frahmantamala/vehicle-ledger/internal/auth"
	"github.com/frahmantamala/vehicle-ledger/internal/expense"
	expensesqlite "github.com/frahmantamala/vehicle-ledger/internal/expense/sqlite"
	"github.com/frahmantamala/vehicle-ledger/internal/mileage"
	mileagesqlite "github.com/frahmantamala/vehicle-ledger/internal/mileage/sqlite"
	"github.com/frahmantamala/vehicle-ledger/internal/refill"
	refillsqlite "github.com/frahmantamala/vehicle-ledger/internal/refill/sqlite"
	"github.com/frahmantamala/vehicle-ledger/internal/transport/rest"
	"github.com/frahmantamala/vehicle-ledger/internal/trip"
	tripsqlite "github.com/frahmantamala/vehicle-ledger/internal/trip/sqlite"
	"github.com/frahmantamala/vehicle-ledger/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle ledger API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down...", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	tokenGen := auth.NewJWTTokenGenerator(deps.Config.Security)
	authService := auth.NewService(deps.Config.Security, tokenGen, deps.Logger)
	authHandler := auth.NewHandler(authService)

	expenseService := expense.NewService(expensesqlite.NewExpenseRepository(deps.GormDB), deps.Logger)
	refillService := refill.NewService(refillsqlite.NewRefillRepository(deps.GormDB), deps.Logger)
	tripService := trip.NewService(tripsqlite.NewTripRepository(deps.GormDB), deps.Logger)
	mileageService := mileage.NewService(mileagesqlite.NewMileageRepository(deps.GormDB), deps.Logger)

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.Config.Server.AllowedOrigins,
		authHandler,
		expense.NewHandler(expenseService),
		refill.NewHandler(refillService),
		trip.NewHandler(tripService),
		mileage.NewHandler(mileageService),
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ORM: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the SQLite database via sqlx and verifies the connection.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "sqlite3"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	// SQLite has a single writer; keep the pool tight.
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm wraps the already-open *sql.DB so gorm and the health check
// share one connection pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(&gormsqlite.Dialector{Conn: db.DB}, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}
