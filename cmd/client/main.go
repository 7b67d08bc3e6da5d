package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-vaultage/internal/adapter"
	"github.com/MKhiriev/go-vaultage/internal/client"
	"github.com/MKhiriev/go-vaultage/internal/config"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/service"
	"github.com/MKhiriev/go-vaultage/internal/store"
	"github.com/MKhiriev/go-vaultage/models"
)

// masterPasswordEnv lets scripts pass the master password without a prompt.
const masterPasswordEnv = "VAULTAGE_MASTER_PASSWORD"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("vaultage-client", cfg.App.LogLevel)
	log.Info().Str("version", buildInfo.BuildVersion()).Str("commit", buildInfo.BuildCommit()).
		Msg("client starting")

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewClientStorages(ctx, *cfg, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	transport := adapter.NewHTTPVaultTransport(cfg.Adapter, log)
	services := service.NewClientServices(storages, transport, *cfg, log)

	app := client.NewApp(services, *cfg, readMasterPassword, os.Stdout, log)
	// config.GetClientConfig has parsed the flags; what is left is the command.
	return app.Run(ctx, flag.Args())
}

// readMasterPassword takes the password from the environment, or from the
// first line of stdin.
func readMasterPassword() (string, error) {
	if pw, ok := os.LookupEnv(masterPasswordEnv); ok {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "Master password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
