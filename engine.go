// Package lvgo is a safe Go layer over the LVGL widget engine.
//
// The engine is a single-threaded C library that owns a tree of widgets,
// renders them into a draw buffer, polls input devices and advances time
// from a tick counter. lvgo wraps its objects in typed handles, turns Go
// closures into engine callbacks, and threads a per-screen context value and
// a per-pass state value into every callback.
//
// A program opens an Engine, registers a Display for its pixel sink, builds
// Screens, adds InputDevices and then drives the engine with Tick and
// RunOnce (or Run) from a single goroutine.
package lvgo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"

	"github.com/agiangrant/lvgo/internal/ffi"
	"github.com/agiangrant/lvgo/internal/handles"
	"github.com/agiangrant/lvgo/internal/native"
	"github.com/agiangrant/lvgo/internal/sim"
)

var (
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("lvgo: unknown backend")
	// ErrLibraryNotLoaded is returned by Open when the engine library
	// cannot be loaded.
	ErrLibraryNotLoaded = errors.New("lvgo: engine library not loaded")
)

// noCopy may be embedded into structs which must not be copied after first
// use; go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Engine is an initialized engine instance. It is owned by the goroutine
// that drives it; only Ticks may be used from elsewhere.
type Engine struct {
	noCopy noCopy

	abi   native.ABI
	cfg   Config
	log   logr.Logger
	reg   *handles.Registry
	arena *arena

	mu      sync.Mutex
	display bool
	grids   [][]Coord
	indevs  []*native.IndevDrv
}

// initFlags records which engine instances have been initialized. The
// native library is a process-wide singleton, so it has a single entry.
var initFlags sync.Map // native.ABI -> *atomic.Bool

// Open loads the configured backend and initializes it. Initializing an
// already initialized backend is a no-op, so opening the native backend
// twice yields two Engines over one engine instance.
func Open(cfg Config) (*Engine, error) {
	cfg.applyEnv()
	var abi native.ABI
	switch cfg.Backend {
	case BackendNative:
		lib, err := ffi.Load(cfg.LibraryPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLibraryNotLoaded, err)
		}
		abi = lib
	case BackendSim:
		abi = sim.New(sim.Options{
			LongPressTime:       cfg.Sim.LongPressTime,
			LongPressRepeatTime: cfg.Sim.LongPressRepeatTime,
			DrawEvents:          cfg.Sim.DrawEvents,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	return newEngine(abi, cfg), nil
}

func newEngine(abi native.ABI, cfg Config) *Engine {
	e := &Engine{
		abi: abi,
		cfg: cfg,
		log: cfg.logger(),
		reg: handles.New(),
	}
	e.arena = newArena(e)

	flag, _ := initFlags.LoadOrStore(abi, new(atomic.Bool))
	if flag.(*atomic.Bool).CompareAndSwap(false, true) {
		engineLog := e.log.WithName("engine")
		abi.LogRegisterPrintCb(func(msg string) {
			engineLog.V(1).Info(strings.TrimSpace(msg))
		})
		abi.Init()
		e.log.V(1).Info("engine initialized", "backend", cfg.Backend)
	}
	return e
}

// Logger returns the engine's logger.
func (e *Engine) Logger() logr.Logger { return e.log }

// NewDrawBufferFor allocates a draw buffer for target sized by
// Config.DrawBufferDivisor.
func (e *Engine) NewDrawBufferFor(target DrawTarget) []Color {
	size := target.Bounds().Size()
	return NewDrawBuffer(size.X, size.Y, e.cfg.DrawBufferDivisor)
}

// ============================================================================
// Time
// ============================================================================

// Ticks advances the engine clock. Unlike the Engine it may be used from any
// goroutine, for example from a timer interrupt or ticker loop.
type Ticks struct {
	abi native.ABI
}

// Inc advances the clock by ms milliseconds.
func (t Ticks) Inc(ms uint32) { t.abi.TickInc(ms) }

// Tick advances the engine clock by ms milliseconds.
func (e *Engine) Tick(ms uint32) { e.abi.TickInc(ms) }

// Ticks returns a clock handle for use by another goroutine.
func (e *Engine) Ticks() Ticks { return Ticks{abi: e.abi} }

// ============================================================================
// Passes
// ============================================================================

type passFrame struct {
	e     *Engine
	state any
}

// pass is the frame of the RunOnce call in flight. The engine is not
// reentrant, and there is one engine per process, so one slot suffices.
var pass atomic.Pointer[passFrame]

// RunOnce runs one pass of the engine's timer handler: input devices are
// polled, timers run and the display is refreshed. Callbacks invoked during
// the pass can read state with CurrentState.
//
// RunOnce panics if a pass is already running, including when called from
// inside a callback.
func (e *Engine) RunOnce(state any) {
	f := &passFrame{e: e, state: state}
	if !pass.CompareAndSwap(nil, f) {
		panic("lvgo: RunOnce called while another pass is running")
	}
	func() {
		defer pass.CompareAndSwap(f, nil)
		e.abi.TimerHandler()
	}()
	e.arena.sweep()
}

// CurrentState returns the state passed to the RunOnce call in flight. It
// panics outside a pass or when the state is not an S.
func CurrentState[S any]() S {
	f := pass.Load()
	if f == nil {
		panic("lvgo: CurrentState called outside RunOnce")
	}
	s, ok := f.state.(S)
	if !ok {
		var want S
		panic(fmt.Sprintf("lvgo: pass state is %T, not %T", f.state, want))
	}
	return s
}

// Run drives the engine until ctx is done: every period the elapsed wall
// time is ticked and a pass is run with state. A period of zero uses
// Config.TickPeriodMS.
func (e *Engine) Run(ctx context.Context, state any, period time.Duration) error {
	if period <= 0 {
		period = e.cfg.tickPeriod()
	}
	t := time.NewTicker(period)
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			if ms := now.Sub(last).Milliseconds(); ms > 0 {
				e.Tick(uint32(ms))
				last = last.Add(time.Duration(ms) * time.Millisecond)
			}
			e.RunOnce(state)
		}
	}
}
