package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dyapi/dyctl/internal/build"
	"github.com/dyapi/dyctl/internal/cmd"
	"github.com/dyapi/dyctl/internal/dyctl"
	dyhttp "github.com/dyapi/dyctl/internal/http"
	"github.com/dyapi/dyctl/internal/trace"
	"github.com/dyapi/dyctl/internal/update"
	"github.com/pterm/pterm"
	"go.opentelemetry.io/otel/attribute"
)

func main() {
	// ensure the pterm info width matches the other printers
	pterm.Info.Prefix.Text = " INFO  "
	printUpdateMsg := checkForNewerVersion()
	err := run()
	printUpdateMsg()
	cmd.HandleErr(err)
}

func run() error {
	ctx, cancel := cliContext()
	defer cancel()

	var root cmd.Cmd
	parser, err := kong.New(
		&root,
		kong.Name("dyctl"),
		kong.Description("Command line client for the Dynamic Yield Experience API."),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	parsed, err := parser.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	shutdowns := initTracing(ctx)
	defer func() {
		for _, shutdown := range shutdowns {
			shutdown()
		}
	}()

	ctx, span := trace.NewSpan(ctx, "dyctl", attribute.String("command", parsed.Command()))
	defer span.End()

	parsed.BindToProvider(bindCtx(ctx))
	if err := parsed.Run(); err != nil {
		return trace.CaptureError(ctx, err)
	}
	return nil
}

// initTracing starts tracing when a sentry DSN is configured.
// Configuration errors are left for the command to report.
func initTracing(ctx context.Context) []trace.Shutdown {
	cfg, err := dyctl.LoadEnvConfig()
	if err != nil {
		pterm.Debug.Printfln("tracing disabled: %s", err)
		return nil
	}
	shutdowns, err := trace.Init(ctx, trace.Options{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Secrets:     []string{cfg.APIKey},
	})
	if err != nil {
		pterm.Debug.Printfln("unable to initialize tracing: %s", err)
	}
	return shutdowns
}

// checks for a newer version of dyctl.
// returns a function that, when called, will print the message about the new version.
func checkForNewerVersion() func() {
	if _, ok := os.LookupEnv(update.EnvDisable); ok {
		return func() {}
	}

	c := make(chan *update.Release, 1)
	go func() {
		defer close(c)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		release, err := update.Check(ctx, dyhttp.DefaultClient, build.Version)
		if err != nil {
			pterm.Debug.Printfln("update check: %s", err)
			return
		}
		c <- release
	}()

	return func() {
		release := <-c
		if release != nil {
			pterm.Info.Printfln("A new release of dyctl is available: %s -> %s\n%s", build.Version, release.Version, release.URL)
		}
	}
}

// get a context that listens for interrupt/shutdown signals.
func cliContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	// listen for shutdown signals
	go func() {
		signalCh := make(chan os.Signal, 1)
		signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
		<-signalCh

		cancel()
	}()
	return ctx, cancel
}

// bindCtx exists to allow kong to correctly inject a context.Context into the Run methods on the commands.
func bindCtx(ctx context.Context) func() (context.Context, error) {
	return func() (context.Context, error) {
		return ctx, nil
	}
}
