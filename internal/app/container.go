package app

import (
	"context"
	"time"

	"github.com/hwittich/rvx/internal/application/coordinator"
	"github.com/hwittich/rvx/internal/application/doctor"
	"github.com/hwittich/rvx/internal/application/reconcile"
	"github.com/hwittich/rvx/internal/domain"
	"github.com/hwittich/rvx/internal/infrastructure/backend"
	"github.com/hwittich/rvx/internal/infrastructure/config"
	"github.com/hwittich/rvx/internal/infrastructure/console"
	"github.com/hwittich/rvx/internal/infrastructure/elevate"
	"github.com/hwittich/rvx/internal/infrastructure/history"
	"github.com/hwittich/rvx/internal/infrastructure/statusline"
	"github.com/hwittich/rvx/internal/pkg/logger"
	"github.com/hwittich/rvx/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Coordinator    *coordinator.Service
	Reconciler     *reconcile.Service
	DoctorService  *doctor.Service
	ConsoleManager *console.Manager
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Backend        ports.BackendClient
	HistoryStore   ports.HistoryRepository
	StatusSink     ports.StatusSink
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph. Prompters come from the
// CLI layer so the elevation executor and the reconciler can talk to the
// user without this package depending on the terminal.
func BuildContainer(ctx context.Context, verbose bool, credentials ports.CredentialPrompter, confirmations ports.ConfirmationPrompter) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	backendClient := backend.NewClient(cfg.Backend.Command, log)
	historyStore := history.NewSQLiteStore()
	consoleManager := console.NewManager(backendClient, console.NewExecHost(), nil, log)
	publisher := statusline.NewPublisher(nil)

	timeout := time.Duration(cfg.Operations.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = domain.DefaultOperationTimeout
	}
	runner := elevate.NewExecutor(cfg.Backend.Command, credentials, log, timeout)

	coord := coordinator.NewService()
	coord.ConfigProvider = cfgLoader
	coord.Backend = backendClient
	coord.Runner = runner
	coord.Console = consoleManager
	coord.Status = publisher
	coord.History = historyStore
	coord.Logger = log

	reconciler := &reconcile.Service{
		ConfigProvider: cfgLoader,
		Backend:        backendClient,
		Prompter:       confirmations,
		Coordinator:    coord,
		Logger:         log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Backend:        backendClient,
		History:        historyStore,
	}

	return &Container{
		Coordinator:    coord,
		Reconciler:     reconciler,
		DoctorService:  doctorService,
		ConsoleManager: consoleManager,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Backend:        backendClient,
		HistoryStore:   historyStore,
		StatusSink:     publisher,
		Logger:         log,
	}, nil
}
