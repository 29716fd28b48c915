package display

import (
	"context"
	"time"

	"github.com/rileyhilliard/padd/internal/logger"
	"github.com/rileyhilliard/padd/internal/render"
	"github.com/rileyhilliard/padd/internal/render/eink"
	"github.com/rileyhilliard/padd/internal/screen"
	"github.com/rileyhilliard/padd/internal/stats"
	"github.com/rileyhilliard/padd/internal/version"
)

// Fetcher retrieves one statistics snapshot.
type Fetcher interface {
	FetchSnapshot(ctx context.Context) (*stats.Snapshot, error)
}

// Boot retry parameters.
const (
	defaultBootAttempts = 3
	defaultBootDelay    = 5 * time.Second
)

// fetchTimeout bounds one snapshot fetch from the worker goroutine.
const fetchTimeout = 15 * time.Second

// Options configures an e-ink control loop.
type Options struct {
	Fetcher        Fetcher
	Surface        Surface
	Events         <-chan screen.Event
	AdminURL       string
	CurrentVersion string
	Checker        *version.Checker
	Logger         logger.Logger

	RefreshTTL     time.Duration
	RotateInterval time.Duration
	SplashDuration time.Duration

	// Tick overrides the loop tick for tests. Zero means one second.
	Tick time.Duration
	// BootAttempts and BootDelay override the startup retry policy.
	BootAttempts int
	BootDelay    time.Duration
}

// Loop drives one e-ink panel. All panel and screen state is owned by
// the goroutine inside Run.
type Loop struct {
	opts     Options
	renderer *eink.Renderer
	rotator  *screen.Rotator
	cache    *stats.Cache
	log      logger.Logger
}

type fetchResult struct {
	snap *stats.Snapshot
	err  error
	at   time.Time
}

// New creates a control loop. Run does the actual work.
func New(opts Options) *Loop {
	if opts.Tick == 0 {
		opts.Tick = time.Second
	}
	if opts.BootAttempts == 0 {
		opts.BootAttempts = defaultBootAttempts
	}
	if opts.BootDelay == 0 {
		opts.BootDelay = defaultBootDelay
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	return &Loop{
		opts:     opts,
		renderer: eink.New(),
		rotator:  screen.NewRotator(screen.NumScreens),
		cache:    stats.NewCache(),
		log:      log,
	}
}

// Run shows the splash, performs the boot fetch with retries, then
// serves button events and timed refreshes until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.opts.Surface.Init(); err != nil {
		return err
	}
	defer func() {
		if err := l.opts.Surface.Sleep(); err != nil {
			l.log.Warn("panel sleep failed: %v", err)
		}
	}()

	if l.opts.SplashDuration > 0 {
		if err := l.opts.Surface.Draw(l.renderer.Splash(l.opts.CurrentVersion)); err != nil {
			return err
		}
		if !sleepCtx(ctx, l.opts.SplashDuration) {
			return nil
		}
	}

	l.boot(ctx)
	if ctx.Err() != nil {
		return nil
	}

	return l.serve(ctx)
}

// boot attempts the first fetch, retrying a fixed number of times
// before falling back to the connection-failed screen.
func (l *Loop) boot(ctx context.Context) {
	var lastErr error
	for attempt := 1; attempt <= l.opts.BootAttempts; attempt++ {
		snap, err := l.fetch(ctx)
		if err == nil {
			l.cache.Store(snap, time.Now())
			return
		}
		lastErr = err
		l.log.Warn("startup fetch %d/%d failed: %v", attempt, l.opts.BootAttempts, err)
		if attempt < l.opts.BootAttempts && !sleepCtx(ctx, l.opts.BootDelay) {
			return
		}
	}

	l.cache.Store(stats.ErrorSnapshot(lastErr.Error()), time.Now())
	l.rotator.EnterConnectionFailed()
}

// serve is the steady-state event loop.
func (l *Loop) serve(ctx context.Context) error {
	dispatcher := screen.NewDispatcher(l.rotator, l.opts.RotateInterval,
		func() { l.cache.ForceInvalidate() },
		func() { l.rotator.ExitConnectionFailed() },
	)

	ticker := time.NewTicker(l.opts.Tick)
	defer ticker.Stop()

	results := make(chan fetchResult, 1)
	inflight := false
	var lastAttempt time.Time

	events := l.opts.Events

	// Rotator starts dirty; paint the first data frame immediately.
	if err := l.draw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			dispatcher.Dispatch(ev)

		case now := <-ticker.C:
			dispatcher.Dispatch(screen.Event{Kind: screen.Tick, Elapsed: l.opts.Tick})
			needFetch := l.cache.NeedsRefresh(now, l.opts.RefreshTTL)
			// Failed fetches leave the cache stale; space retries out
			// instead of hammering an unreachable Pi-hole every tick.
			if needFetch && !inflight && now.Sub(lastAttempt) >= l.opts.BootDelay {
				inflight = true
				lastAttempt = now
				go func() {
					snap, err := l.fetch(ctx)
					results <- fetchResult{snap: snap, err: err, at: time.Now()}
				}()
			}

		case res := <-results:
			inflight = false
			if res.err != nil {
				l.log.Debug("fetch failed: %v", res.err)
				l.cache.Store(stats.ErrorSnapshot(res.err.Error()), res.at)
				l.rotator.EnterConnectionFailed()
			} else {
				l.cache.Store(res.snap, res.at)
				l.rotator.ExitConnectionFailed()
				l.rotator.MarkDirty()
			}
		}

		if l.rotator.Dirty() {
			if err := l.draw(); err != nil {
				return err
			}
		}
	}
}

// draw composes and pushes the current frame to the panel.
func (l *Loop) draw() error {
	sc := render.Compose(l.cache.Current(), l.rotator.State(), l.versionInfo(), l.opts.AdminURL)
	if err := l.opts.Surface.Draw(l.renderer.Render(sc)); err != nil {
		return err
	}
	l.rotator.AcknowledgeDrawn()
	return nil
}

func (l *Loop) fetch(ctx context.Context) (*stats.Snapshot, error) {
	fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	return l.opts.Fetcher.FetchSnapshot(fctx)
}

func (l *Loop) versionInfo() render.VersionInfo {
	info := render.VersionInfo{Current: l.opts.CurrentVersion, Status: version.StatusUnknown}
	if l.opts.Checker != nil {
		info.Latest, _ = l.opts.Checker.Latest()
		info.Status = l.opts.Checker.Status(l.opts.CurrentVersion)
	}
	return info
}

// sleepCtx sleeps for d, returning false if ctx ended first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
