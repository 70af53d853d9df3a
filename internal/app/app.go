// Package app implements the application layer for datagen.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/datagen/internal/adapters/detector"
	"go.trai.ch/datagen/internal/adapters/linear"
	"go.trai.ch/datagen/internal/adapters/metrics"
	"go.trai.ch/datagen/internal/adapters/telemetry"
	"go.trai.ch/datagen/internal/adapters/tui"
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/datagen/internal/core/ports"
	"go.trai.ch/datagen/internal/engine/exporter"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TracerName is the instrumentation name of the export spans.
const TracerName = "datagen"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	factory      ports.ProviderFactory
	sink         ports.BlobSink
	stderr       io.Writer
	teaOptions   []tea.ProgramOption
	disableTick  bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	factory ports.ProviderFactory,
	sink ports.BlobSink,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		factory:      factory,
		sink:         sink,
		stderr:       os.Stderr,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDisableTick disables the TUI tick loop.
func (a *App) WithDisableTick() *App {
	a.disableTick = true
	return a
}

// WithOutput sets the writer progress is rendered to. It defaults to stderr.
func (a *App) WithOutput(w io.Writer) *App {
	a.stderr = w
	return a
}

// ExportOptions configuration for the Export method.
type ExportOptions struct {
	// ConfigPath is the configuration file; empty looks for datagen.yaml in the working directory.
	ConfigPath string
	// Overrides are the command line flags, applied over the loaded configuration.
	Overrides Overrides
	// OutputMode selects the progress renderer: auto, tui or linear.
	OutputMode string
	// MetricsFile, when set, receives the export metrics in the Prometheus text format.
	MetricsFile string
}

// Export loads the configuration, exports every planned marker and writes the blob.
// Every failure is joined with domain.ErrExportFailed.
func (a *App) Export(ctx context.Context, opts ExportOptions) (*domain.ExportResult, error) {
	result, err := a.export(ctx, opts)
	if err != nil {
		return nil, errors.Join(domain.ErrExportFailed, err)
	}
	return result, nil
}

//nolint:cyclop // orchestration function
func (a *App) export(ctx context.Context, opts ExportOptions) (*domain.ExportResult, error) {
	started := time.Now()

	// 1. Build the request
	req, err := a.request(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, err
	}
	a.logger.Debug(fmt.Sprintf("components: %s", strings.Join(req.Components.Names(), ", ")))
	a.logger.Debug(fmt.Sprintf("locales: %s", strings.Join(req.Locales, ", ")))

	// 2. Open the provider source
	provider, err := a.factory.NewProvider(req.Source)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open provider source")
	}

	// 3. Initialize Renderer
	mode, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return nil, err
	}
	mode = detector.ResolveMode(detector.DetectEnvironment(), mode.String())
	renderer := a.newRenderer(ctx, mode)

	// 4. Initialize Telemetry
	shutdown := telemetry.Setup(renderer)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()
	tracer := telemetry.NewOTelTracer(TracerName).WithRenderer(renderer)

	recorder := metrics.New(opts.MetricsFile)
	exp := exporter.New(tracer, recorder)

	// 5. Run Renderer and Exporter concurrently
	var result *domain.ExportResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()

		bundle, err := exp.Export(gctx, provider, req)
		if err != nil {
			return err
		}

		result, err = a.sink.Write(gctx, req.Export.Output, bundle)
		return err
	})

	err = g.Wait()
	elapsed := time.Since(started)

	switch {
	case err == nil:
		result.Duration = elapsed
		recorder.SetBlobSize(result.Size)
		recorder.ObserveExport(metrics.OutcomeSuccess, elapsed)
	case errors.Is(err, context.Canceled):
		recorder.ObserveExport(metrics.OutcomeCanceled, elapsed)
	default:
		recorder.ObserveExport(metrics.OutcomeFailure, elapsed)
	}

	if flushErr := recorder.Flush(); flushErr != nil {
		a.logger.Warn(flushErr.Error())
	}

	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf(
		"exported %d marker(s), %d payload(s) to %s (%d bytes, xxhash %s) in %v",
		result.Markers, result.Entries, result.Path, result.Size, result.Checksum, elapsed.Round(time.Millisecond),
	))
	return result, nil
}

func (a *App) newRenderer(ctx context.Context, mode detector.OutputMode) ports.Renderer {
	if mode == detector.ModeTUI {
		model := tui.NewModel(a.stderr)
		if a.disableTick {
			model = model.WithDisableTick()
		}
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(a.stderr)}, a.teaOptions...)
		return tui.NewRenderer(&model, optsTea...)
	}
	return linear.NewRenderer(a.stderr)
}

// request loads the configuration and applies the command line overrides.
func (a *App) request(configPath string, overrides Overrides) (domain.ExportRequest, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return domain.ExportRequest{}, zerr.Wrap(err, "failed to get working directory")
	}

	req, err := a.configLoader.Load(cwd, configPath)
	if err != nil {
		return domain.ExportRequest{}, zerr.Wrap(err, "failed to load configuration")
	}

	if err := overrides.Apply(&req, cwd); err != nil {
		return domain.ExportRequest{}, err
	}

	if err := req.Validate(); err != nil {
		return domain.ExportRequest{}, err
	}
	return req, nil
}

// absPath resolves p against cwd.
func absPath(cwd, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cwd, p)
}
