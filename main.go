package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kjcma/portfolio/internal/config"
	"github.com/kjcma/portfolio/internal/content"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Serve the portfolio pages",
		Long:         "Serves the portfolio pages at /, /1 and /palash, and inspects their engagement records from the command line.",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		newPagesCmd(),
		newRecordsCmd(),
	)
	return root
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "portfolio",
	})
}

func runServe(cmd *cobra.Command, _ []string) error {
	conf, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), conf.LogLevel)

	site := content.MustSite()
	r, err := newRouter(conf, site, logger)
	if err != nil {
		return err
	}
	for _, page := range site.Pages() {
		logger.Debug("page registered", "route", page.Route, "records", len(page.Records()), "tabs", page.Policy.Keys())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, conf, r, logger)
}
