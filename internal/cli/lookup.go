package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"order-viewer/internal/core/config"
	"order-viewer/internal/core/locale"
	"order-viewer/internal/core/logger"
	adapter "order-viewer/internal/features/lookup/adapters"
	"order-viewer/internal/features/lookup/domain"
	"order-viewer/internal/features/lookup/ports"
	"order-viewer/internal/features/lookup/render"
	"order-viewer/internal/features/lookup/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Render modes for --render.
const (
	RenderTerminal = "terminal"
	RenderBrowser  = "browser"
)

// ErrBlankOrderUID is returned when the identifier is empty after trimming.
var ErrBlankOrderUID = errors.New("order uid is blank")

type lookupOptions struct {
	configPath string
	serviceURL string
	locale     string
	timeZone   string
	render     string
	pageURL    string
	screenshot string
	timeout    time.Duration
}

// NewLookupCmd creates the lookup command.
func NewLookupCmd() *cobra.Command {
	var opts lookupOptions

	cmd := &cobra.Command{
		Use:   "lookup <order-uid>",
		Short: "Look up one order and render it",
		Long: `Fetches an order from the order-lookup service and renders it the way the
viewer page does.

With --render terminal (default) the result is printed as sections and an
items table. With --render browser the viewer page at --page-url is opened in
headless Chromium and the lookup runs against its live DOM.

The exit code is non-zero when the lookup fails.`,
		Example: `  # Print an order in the terminal
  lookup b563feb7b2b84b6test --service-url http://localhost:8081

  # Drive the viewer page in a browser and keep a screenshot
  lookup b563feb7b2b84b6test --render browser --page-url http://localhost:8080/ --screenshot order.png`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", ".", "directory holding the .env file")
	cmd.Flags().StringVar(&opts.serviceURL, "service-url", "", "order-lookup service base URL (overrides ORDER_SERVICE_URL)")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "display locale, e.g. ru-RU (overrides DISPLAY_LOCALE)")
	cmd.Flags().StringVar(&opts.timeZone, "timezone", "", "display time zone, e.g. Europe/Moscow (overrides DISPLAY_TIMEZONE)")
	cmd.Flags().StringVar(&opts.render, "render", RenderTerminal, "where to render: terminal or browser")
	cmd.Flags().StringVar(&opts.pageURL, "page-url", "", "viewer page URL for --render browser")
	cmd.Flags().StringVar(&opts.screenshot, "screenshot", "", "PNG file to save after a browser lookup")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", time.Minute, "overall time limit")

	return cmd
}

func runLookup(cmd *cobra.Command, orderUID string, opts lookupOptions) error {
	if opts.render != RenderTerminal && opts.render != RenderBrowser {
		return fmt.Errorf("unknown render mode %q: use %s or %s", opts.render, RenderTerminal, RenderBrowser)
	}
	if opts.render == RenderBrowser && opts.pageURL == "" {
		return errors.New("--page-url is required with --render browser")
	}
	if opts.render == RenderTerminal && opts.screenshot != "" {
		return errors.New("--screenshot needs --render browser")
	}

	cfg, err := config.LoadWith(opts.configPath, map[string]string{
		"ORDER_SERVICE_URL": opts.serviceURL,
		"DISPLAY_LOCALE":    opts.locale,
		"DISPLAY_TIMEZONE":  opts.timeZone,
	})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	loc, err := cfg.Display.Location()
	if err != nil {
		return err
	}
	formatter := locale.New(cfg.Display.Locale, loc)
	source := adapter.NewHTTPOrderSource(cfg.OrderService)

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	if opts.render == RenderBrowser {
		return lookupInBrowser(ctx, cmd, cfg.Browser, source, formatter, orderUID, opts)
	}
	return lookupInTerminal(ctx, cmd, source, formatter, orderUID)
}

func lookupInTerminal(ctx context.Context, cmd *cobra.Command, source ports.OrderSource, formatter domain.TimeFormatter, orderUID string) error {
	doc := adapter.NewMemoryDocument()
	doc.SetInput(orderUID)

	client := service.NewOrderDetailsClient(source, doc, formatter)
	outcome, lookupErr := client.SubmitFromInput(ctx)
	if outcome == service.OutcomeIgnored {
		return ErrBlankOrderUID
	}

	if err := render.Terminal(cmd.OutOrStdout(), doc.Snapshot(), nil); err != nil {
		return err
	}

	if lookupErr != nil {
		return fmt.Errorf("lookup failed: %w", lookupErr)
	}
	return nil
}

// viewerPage is the part of a browser session a browser lookup drives.
// *adapter.BrowserSession satisfies it.
type viewerPage interface {
	Open(pageURL string) error
	TypeOrderUID(orderUID string) error
	Document() (*adapter.BrowserDocument, error)
	Screenshot(path string) error
}

func lookupInBrowser(ctx context.Context, cmd *cobra.Command, browserCfg config.BrowserConfig, source ports.OrderSource, formatter domain.TimeFormatter, orderUID string, opts lookupOptions) error {
	if strings.TrimSpace(orderUID) == "" {
		return ErrBlankOrderUID
	}

	session, err := adapter.LaunchBrowser(ctx, browserCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Get().Warn("Failed to close browser", zap.Error(err))
		}
	}()

	return lookupInPage(ctx, cmd, session, source, formatter, orderUID, opts)
}

// lookupInPage types orderUID into the viewer page and runs the client against
// its DOM, mirroring every write so the result can be printed.
func lookupInPage(ctx context.Context, cmd *cobra.Command, page viewerPage, source ports.OrderSource, formatter domain.TimeFormatter, orderUID string, opts lookupOptions) error {
	if err := page.Open(opts.pageURL); err != nil {
		return err
	}
	if err := page.TypeOrderUID(orderUID); err != nil {
		return err
	}

	browserDoc, err := page.Document()
	if err != nil {
		return err
	}

	mirror := adapter.NewMemoryDocument()
	doc := &teeDocument{primary: browserDoc, mirror: mirror}

	client := service.NewOrderDetailsClient(source, doc, formatter)
	_, lookupErr := client.SubmitFromInput(ctx)

	if err := browserDoc.Err(); err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}

	if opts.screenshot != "" {
		if err := page.Screenshot(opts.screenshot); err != nil {
			return err
		}
		cmd.Printf("Screenshot saved to %s\n", opts.screenshot)
	}

	if err := render.Terminal(cmd.OutOrStdout(), mirror.Snapshot(), nil); err != nil {
		return err
	}

	if lookupErr != nil {
		return fmt.Errorf("lookup failed: %w", lookupErr)
	}
	return nil
}

// teeDocument writes to a primary document and a mirror. Input is read from primary.
type teeDocument struct {
	primary ports.Document
	mirror  ports.Document
}

func (d *teeDocument) InputValue() string {
	return d.primary.InputValue()
}

func (d *teeDocument) SetText(target domain.Target, text string) {
	d.primary.SetText(target, text)
	d.mirror.SetText(target, text)
}

func (d *teeDocument) ReplaceItems(rows []domain.ItemRow) {
	d.primary.ReplaceItems(rows)
	d.mirror.ReplaceItems(rows)
}

func (d *teeDocument) SetVisible(region domain.Region, visible bool) {
	d.primary.SetVisible(region, visible)
	d.mirror.SetVisible(region, visible)
}
