package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-topologic/internal/adapter"
	"github.com/MKhiriev/go-topologic/internal/config"
	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/models"
)

const loadedAtLayout = "2006-01-02 15:04:05"

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	copyToClipboard bool
	copy            func(string) error
	showInfo        bool

	titleStyle lipgloss.Style

	logger *logger.Logger
}

// NewApp builds the client over the HTTP adapter described by cfg. Command
// output is written to out.
func NewApp(cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	app := newApp(serverAdapter, out, logger)
	app.copyToClipboard = cfg.CopyToClipboard
	app.showInfo = cfg.ShowInfo
	return app, nil
}

func newApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	renderer := lipgloss.NewRenderer(out)

	return &App{
		adapter:    serverAdapter,
		out:        out,
		copy:       clipboard.WriteAll,
		titleStyle: renderer.NewStyle().Bold(true),
		logger:     logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		return a.printModels(ctx)
	case 1:
		if a.showInfo {
			return a.printModel(ctx, args[0])
		}
		return a.printModelConfig(ctx, args[0])
	case 2:
		return a.printValue(ctx, args[0], args[1])
	default:
		return ErrTooManyArguments
	}
}

func (a *App) printModels(ctx context.Context) error {
	version, err := a.adapter.GetVersion(ctx)
	if err != nil {
		return fmt.Errorf("get server version: %w", err)
	}

	registered, err := a.adapter.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("list models: %w", err)
	}

	fmt.Fprintln(a.out, a.titleStyle.Render("topologic server "+version))
	if len(registered) == 0 {
		fmt.Fprintln(a.out, "no models registered")
		return nil
	}

	fmt.Fprintln(a.out, modelsTable(registered))
	return nil
}

func modelsTable(registered []models.RegisteredModel) string {
	rows := make([][]string, 0, len(registered))
	for _, m := range registered {
		rows = append(rows, []string{
			m.TableName,
			m.ObjectLevel,
			strconv.Itoa(m.Topics),
			m.Method,
			strconv.Itoa(m.CorpusSize),
			m.LoadedAt.Local().Format(loadedAtLayout),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TABLE", "OBJECT LEVEL", "TOPICS", "METHOD", "DOCUMENTS", "LOADED AT").
		Rows(rows...).
		String()
}

func (a *App) printModel(ctx context.Context, tableName string) error {
	registered, err := a.adapter.GetModel(ctx, tableName)
	if err != nil {
		return fmt.Errorf("get model: %w", err)
	}

	fmt.Fprintln(a.out, modelsTable([]models.RegisteredModel{registered}))
	return nil
}

func (a *App) printModelConfig(ctx context.Context, tableName string) error {
	cfg, err := a.adapter.GetModelConfig(ctx, tableName)
	if err != nil {
		return fmt.Errorf("get model config: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model config: %w", err)
	}

	fmt.Fprintln(a.out, string(data))
	return nil
}

func (a *App) printValue(ctx context.Context, tableName, path string) error {
	value, err := a.adapter.LookupValue(ctx, tableName, path)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", path, err)
	}

	fmt.Fprintln(a.out, value)

	if a.copyToClipboard {
		if err := a.copy(value); err != nil {
			a.logger.Warn().Err(err).Msg("error copying value to clipboard")
		}
	}
	return nil
}
