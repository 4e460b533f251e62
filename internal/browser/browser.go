// Package browser owns the headless Chrome session shared by both upstream
// handlers. One session is launched per run and reused for every page load;
// page loads are paced by a token bucket limiter so the collector stays
// polite to the third-party sites.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"

	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/config"
)

// Session wraps a running headless Chrome instance. It holds no per-station
// state between page loads.
type Session struct {
	ctx     context.Context
	cancels []context.CancelFunc

	limiter    *rate.Limiter
	navTimeout time.Duration
	settleWait time.Duration
	logger     *slog.Logger
}

// New launches the browser. A launch failure is fatal to the run: no station
// can be fetched without a session.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := chromedp.DefaultExecAllocatorOptions[:]
	if !cfg.Headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Launch eagerly so a missing Chrome binary fails here, not on the
	// first station.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	rps := float64(cfg.FetchPerMinute) / 60.0
	return &Session{
		ctx:        browserCtx,
		cancels:    []context.CancelFunc{browserCancel, allocCancel},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		navTimeout: cfg.NavTimeout,
		settleWait: cfg.SettleWait,
		logger:     logger,
	}, nil
}

// HTML navigates to url, waits the settle pause for client-side rendering,
// and returns the rendered document. The whole operation is bounded by the
// configured navigation timeout; on expiry the load is abandoned and the
// error returned.
func (s *Session) HTML(ctx context.Context, url string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	tctx, cancel := s.navContext(ctx, s.navTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(tctx,
		chromedp.Navigate(url),
		chromedp.Sleep(s.settleWait),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("navigate %s: %w", url, err)
	}
	return html, nil
}

// Screenshot captures the current page into dir as <name>.png. Best-effort
// diagnostics only; callers log and move on when it fails.
func (s *Session) Screenshot(ctx context.Context, dir, name string) error {
	tctx, cancel := s.navContext(ctx, 10*time.Second)
	defer cancel()

	var buf []byte
	if err := chromedp.Run(tctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return fmt.Errorf("capture screenshot: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot dir: %w", err)
	}
	path := filepath.Join(dir, name+".png")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	s.logger.Debug("screenshot saved", "path", path)
	return nil
}

// navContext bounds a browser operation three ways: the session lifetime
// (chromedp tasks must run on the session context), the given timeout, and
// the caller's cancellation.
func (s *Session) navContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	tctx, cancel := context.WithTimeout(s.ctx, timeout)
	stop := context.AfterFunc(ctx, cancel)
	return tctx, func() {
		stop()
		cancel()
	}
}

// Close shuts the browser down.
func (s *Session) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}
