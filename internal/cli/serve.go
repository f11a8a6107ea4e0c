package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alovak/cardcheck/classifier"
	"github.com/alovak/cardcheck/internal/config"
	"github.com/spf13/cobra"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the classification HTTP API",
		Long: `Run the classification HTTP API.

Configuration is read from cardcheck.yaml (current directory or the user
config directory), CARDCHECK_* environment variables and flags, in
increasing order of precedence.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	def := classifier.DefaultConfig()
	cmd.Flags().String("config", "", "Path to a config file")
	cmd.Flags().String("http-addr", def.HTTPAddr, "HTTP listen address")
	cmd.Flags().String("audit-backend", def.AuditBackend, "Verdict log backend: mem|pg")
	cmd.Flags().String("db-dsn", "", "Postgres DSN for the pg backend")
	cmd.Flags().String("pan-hash-key", def.PANHashKey, "HMAC key used to fingerprint numbers")
	cmd.Flags().String("log-level", def.LogLevel, "Log level: debug|info|warn|error")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd, cfgFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := classifier.NewApp(logger, cfg)
	if err := app.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	app.Shutdown()
	return nil
}
