package adapter

import (
	"context"
	"fmt"
	"os"

	"order-viewer/internal/core/config"
	"order-viewer/internal/core/logger"
	"order-viewer/internal/features/lookup/domain"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// BrowserSession owns one headless browser and the viewer page opened in it.
type BrowserSession struct {
	browser *rod.Browser
	page    *rod.Page
	logger  *zap.Logger
}

// LaunchBrowser starts Chromium and connects to it. ctx bounds every later
// page operation as well.
func LaunchBrowser(ctx context.Context, cfg config.BrowserConfig) (*BrowserSession, error) {
	log := logger.Get()
	log.Debug("Launching browser...",
		zap.Bool("headless", cfg.Headless),
		zap.String("bin", cfg.Bin),
	)

	l := launcher.New().
		Context(ctx).
		Headless(cfg.Headless).
		NoSandbox(true)

	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().Context(ctx).ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &BrowserSession{browser: browser, logger: log}, nil
}

// Open navigates to pageURL and waits for the lookup form.
func (s *BrowserSession) Open(pageURL string) error {
	page, err := s.browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to load page: %w", err)
	}
	if _, err := page.Element("#" + domain.FormID); err != nil {
		return fmt.Errorf("page has no lookup form: %w", err)
	}

	s.page = page
	s.logger.Debug("Viewer page opened", zap.String("url", pageURL))
	return nil
}

// TypeOrderUID replaces the input field contents with orderUID.
func (s *BrowserSession) TypeOrderUID(orderUID string) error {
	if s.page == nil {
		return fmt.Errorf("no page open")
	}

	el, err := s.page.Element("#" + domain.InputID)
	if err != nil {
		return fmt.Errorf("failed to find input: %w", err)
	}
	if err := el.SelectAllText(); err != nil {
		return fmt.Errorf("failed to select input: %w", err)
	}
	if err := el.Input(orderUID); err != nil {
		return fmt.Errorf("failed to type order uid: %w", err)
	}
	return nil
}

// Document returns a Document bound to the open page.
func (s *BrowserSession) Document() (*BrowserDocument, error) {
	if s.page == nil {
		return nil, fmt.Errorf("no page open")
	}
	return NewBrowserDocument(s.page), nil
}

// Screenshot writes a full-page PNG to path.
func (s *BrowserSession) Screenshot(path string) error {
	if s.page == nil {
		return fmt.Errorf("no page open")
	}

	img, err := s.page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}

	if err := os.WriteFile(path, img, 0o644); err != nil {
		return fmt.Errorf("failed to write screenshot: %w", err)
	}
	return nil
}

// Close shuts the browser down.
func (s *BrowserSession) Close() error {
	return s.browser.Close()
}
