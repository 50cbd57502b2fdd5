package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealstream/cmd/bootstrap"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const appTimeout = 30 * time.Second

var rootCmd = &cobra.Command{
	Use:           "dealsctl",
	Short:         "dealsctl is the operator CLI for the dealstream backend.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withApp builds the core object graph, fills targets, and runs fn between
// app start and stop.
func withApp(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Populate(targets...),
	)

	startCtx, cancel := context.WithTimeout(ctx, appTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	runErr := fn(ctx)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), appTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return err
	}
	return runErr
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
