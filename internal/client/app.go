package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-vaultage/internal/config"
	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/service"
)

type App struct {
	auth     service.ClientAuthService
	cfg      config.ClientConfig
	password PasswordSource
	out      io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cfg config.ClientConfig, password PasswordSource, out io.Writer, logger *logger.Logger) *App {
	return &App{
		auth:     services.AuthService,
		cfg:      cfg,
		password: password,
		out:      out,
		logger:   logger,
	}
}

// Run logs in and executes the command in args. Without arguments it lists
// the entries.
func (a *App) Run(ctx context.Context, args []string) error {
	name := "list"
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(args) < cmd.minArgs {
		return fmt.Errorf("%w: usage: %s %s", ErrMissingArguments, name, cmd.usage)
	}

	masterPassword, err := a.password()
	if err != nil {
		return fmt.Errorf("read master password: %w", err)
	}

	vault, err := a.auth.Login(ctx, a.cfg.Adapter.ServerURL, a.cfg.Adapter.Username, masterPassword)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer vault.Close()

	a.logger.Info().Str("func", "*App.Run").Str("command", name).
		Bool("offline", vault.IsOffline()).Bool("demo", vault.IsInDemoMode()).Msg("running command")

	return cmd.run(ctx, a, &session{vault: vault}, args)
}
