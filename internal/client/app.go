package client

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-courses-api/internal/adapter"
	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
)

type App struct {
	cfg        config.Adapter
	newAdapter AdapterFactory
	adapter    adapter.APIAdapter
	buildInfo  models.AppBuildInfo

	out    io.Writer
	logger *logger.Logger
}

// NewApp constructs the command line client. Output is written to out.
func NewApp(cfg config.Adapter, buildInfo models.AppBuildInfo, newAdapter AdapterFactory, out io.Writer, logger *logger.Logger) Client {
	return &App{
		cfg:        cfg,
		buildInfo:  buildInfo,
		newAdapter: newAdapter,
		out:        out,
		logger:     logger,
	}
}

// Run parses args and executes the matching command.
func (a *App) Run(args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.out)

	return root.Execute()
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "courses",
		Short:         "Courses API command line client",
		Long:          "Command line interface for the users and courses of the Courses REST API.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.HTTPAddress, "address", "a", a.cfg.HTTPAddress, "base URL of the API")
	flags.StringVarP(&a.cfg.Email, "email", "u", a.cfg.Email, "email address used for Basic authentication")
	flags.StringVarP(&a.cfg.Password, "password", "p", a.cfg.Password, "password used for Basic authentication")
	flags.DurationVar(&a.cfg.RequestTimeout, "timeout", a.cfg.RequestTimeout, "timeout of a single request")

	root.AddCommand(
		a.welcomeCommand(),
		a.versionCommand(),
		a.buildInfoCommand(),
		a.usersCommand(),
		a.coursesCommand(),
	)

	return root
}

// connect builds the adapter from the configuration merged with flags.
func (a *App) connect() error {
	if a.adapter != nil {
		return nil
	}

	apiAdapter, err := a.newAdapter(a.cfg, a.logger)
	if err != nil {
		return err
	}
	a.adapter = apiAdapter

	return nil
}

func (a *App) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	// the adapter applies the same timeout per request; this bounds the command
	return context.WithTimeout(ctx, a.cfg.RequestTimeout+time.Second)
}
