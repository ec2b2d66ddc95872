// Command librarian runs the floating library Slack bot.
//
//	librarian serve           serve Slack events, interactions and health probes
//	librarian migrate         apply database migrations and exit
//	librarian search <query>  query the book catalog once and print the results
//
// Configuration comes from the environment, .env and a YAML file chosen
// with --config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/floating-librarian/internal/app"
	"github.com/heartmarshall/floating-librarian/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg        *config.Config
		configPath string
	)

	root := &cobra.Command{
		Use:           "librarian",
		Short:         "Team book collection bot for Slack",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "",
		"YAML config file (default $CONFIG_PATH, then "+config.DefaultPath+")")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the Slack endpoints until interrupted",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Serve(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Migrate(cmd.Context(), cfg)
			},
		},
		newSearchCmd(&cfg),
	)

	return root
}
