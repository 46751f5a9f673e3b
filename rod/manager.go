package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/pagemd"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered before the browser is
// replaced. Chrome's memory use grows steadily over long batch runs.
const DefaultMaxPages = 50

// BrowserManager hands out a shared headless browser and swaps it for a
// fresh process once it has rendered MaxPages pages.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int64
	recycled int
	closed   bool

	maxPages int64
	bin      string
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the number of pages rendered before recycling.
// Values below one keep the default.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		if n > 0 {
			bm.maxPages = n
		}
	}
}

// WithBrowserBin launches the Chrome or Chromium binary at path instead of
// the one found on the system or downloaded by rod.
func WithBrowserBin(path string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.bin = path
	}
}

// NewBrowserManager launches a headless browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	b, l, err := bm.launch()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = b, l
	return bm, nil
}

// Acquire returns the browser for rendering one page. The release func
// must be called once the page is closed; it counts the page toward
// recycling. Returns EINVALID after Close.
func (bm *BrowserManager) Acquire() (*rod.Browser, func(), error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, nil, pagemd.Errorf(pagemd.EINVALID, "browser is closed")
	}
	if bm.pages >= bm.maxPages {
		bm.recycle()
	}

	release := func() {
		bm.mu.Lock()
		bm.pages++
		bm.mu.Unlock()
	}
	return bm.browser, release, nil
}

// Recycled returns how many times the browser has been replaced.
func (bm *BrowserManager) Recycled() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.recycled
}

// LauncherPID returns the process ID of the browser launcher, or 0 when closed.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

// Close shuts the browser down. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true

	err := shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = nil, nil
	return err
}

// launch starts a headless browser with background throttling disabled,
// so pages rendered in parallel tabs are not starved.
func (bm *BrowserManager) launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)
	if bm.bin != "" {
		l = l.Bin(bm.bin)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return b, l, nil
}

// recycle swaps in a fresh browser. The old one keeps serving when the
// launch fails. Must be called with mu held.
func (bm *BrowserManager) recycle() {
	b, l, err := bm.launch()
	if err != nil {
		return
	}
	_ = shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = b, l
	bm.pages = 0
	bm.recycled++
}

func shutdown(b *rod.Browser, l *launcher.Launcher) error {
	var err error
	if b != nil {
		err = b.Close()
	}
	if l != nil {
		l.Kill()
	}
	return err
}
