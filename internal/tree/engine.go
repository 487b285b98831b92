// Package tree converts a live desktop's accessibility tree into a
// compact, classified snapshot an agent can reason over and act on.
package tree

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"runtime"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mj1618/desktop-tree/internal/config"
	"github.com/mj1618/desktop-tree/internal/model"
	"github.com/mj1618/desktop-tree/internal/platform"
)

// Engine produces TreeState snapshots from a platform accessibility root.
// It holds no state between snapshots; every call reads the desktop fresh.
type Engine struct {
	desktop platform.Desktop
	cfg     config.Config
	log     *zap.Logger
	avoided map[string]bool

	seedMu   sync.Mutex
	seedNext int64
}

// New creates an engine. A nil logger disables logging.
func New(desktop platform.Desktop, cfg config.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	avoided := make(map[string]bool, len(cfg.AvoidedApps))
	for _, name := range cfg.AvoidedApps {
		avoided[name] = true
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		desktop:  desktop,
		cfg:      cfg,
		log:      log,
		avoided:  avoided,
		seedNext: seed,
	}
}

// newRand hands out a deterministic stream of random sources when the
// engine was seeded, so repeated snapshots of the same tree sample the
// same click points.
func (e *Engine) newRand() *rand.Rand {
	e.seedMu.Lock()
	defer e.seedMu.Unlock()
	r := rand.New(rand.NewSource(e.seedNext))
	e.seedNext++
	return r
}

// GetState waits for the settle delay, reads the accessibility root, and
// returns one full classified snapshot. Failing apps are omitted rather
// than failing the snapshot: the caller always prefers partial state over
// none.
func (e *Engine) GetState(ctx context.Context) (model.TreeState, error) {
	if err := e.settle(ctx); err != nil {
		return model.TreeState{}, err
	}
	root, err := e.desktop.RootControl()
	if err != nil {
		return model.TreeState{}, fmt.Errorf("read root control: %w", err)
	}
	return e.appwiseNodes(ctx, root)
}

// GetAnnotatedImageData returns a screenshot with every interactive node
// boxed and indexed, plus the node list those indices refer to.
func (e *Engine) GetAnnotatedImageData(ctx context.Context) (image.Image, []model.TreeElementNode, error) {
	root, err := e.desktop.RootControl()
	if err != nil {
		return nil, nil, fmt.Errorf("read root control: %w", err)
	}
	state, err := e.appwiseNodes(ctx, root)
	if err != nil {
		return nil, nil, err
	}
	screenshot, err := e.desktop.CaptureScreen(e.cfg.RenderScale)
	if err != nil {
		return nil, nil, fmt.Errorf("capture screen: %w", err)
	}
	annotator := NewAnnotator(e.cfg.RenderScale, e.newRand())
	img, err := annotator.Render(ctx, screenshot, state.InteractiveNodes)
	if err != nil {
		return nil, nil, err
	}
	return img, state.InteractiveNodes, nil
}

// settle waits the configured delay so just-triggered UI transitions
// (menu open, focus change) finish animating before the tree is read.
func (e *Engine) settle(ctx context.Context) error {
	if e.cfg.SettleDelayMs <= 0 {
		return nil
	}
	timer := time.NewTimer(e.cfg.SettleDelay())
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// appwiseNodes fans the per-app walk out across a bounded worker pool and
// merges the results. A failing app is logged and omitted; it never aborts
// the snapshot. Merge order across apps follows worker completion and is
// not deterministic.
func (e *Engine) appwiseNodes(ctx context.Context, root platform.Control) (model.TreeState, error) {
	apps, err := root.Children()
	if err != nil {
		return model.TreeState{}, fmt.Errorf("enumerate applications: %w", err)
	}

	var (
		mu     sync.Mutex
		merged model.TreeState
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, app := range apps {
		if !e.desktop.IsAppVisible(app) {
			continue
		}
		name, _ := app.Name()
		name = strings.TrimSpace(name)
		if e.avoided[name] {
			continue
		}
		browser := e.desktop.IsAppBrowser(app)
		// Random sources are assigned in app enumeration order, before the
		// workers race, so seeded runs sample the same click points.
		rng := e.newRand()
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w := newWalker(e.cfg, rng, browser)
			state, err := w.run(app)
			if err != nil {
				e.log.Warn("app traversal failed, omitting from snapshot",
					zap.String("app", name), zap.Error(err))
				return nil
			}
			mu.Lock()
			merged.Merge(state)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.TreeState{}, err
	}
	return merged, nil
}
