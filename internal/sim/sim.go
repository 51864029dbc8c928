// Package sim is a Go simulation of the widget engine's C ABI.
//
// It implements native.ABI with enough of the engine's observable behaviour
// to exercise the binding layer: an object tree with default flags, event
// bubbling, screen loading, pointer/keypad/encoder processing, and a refresh
// cycle that renders object backgrounds into the registered draw buffer and
// hands it to the flush callback chunk by chunk.
//
// Like the real engine it is not reentrant and must be driven from a single
// goroutine; only TickInc may be called concurrently.
package sim

import (
	"fmt"
	"sync/atomic"

	"github.com/agiangrant/lvgo/internal/native"
)

// Options tunes the simulated engine.
type Options struct {
	// LongPressTime is how long a pointer must stay pressed before
	// LongPressed is sent, in ticks (milliseconds).
	LongPressTime uint32
	// LongPressRepeatTime is the period of LongPressedRepeat.
	LongPressRepeatTime uint32
	// DrawEvents sends the main/post draw events to every rendered object.
	DrawEvents bool
}

// DefaultOptions mirrors the engine's compiled-in defaults.
func DefaultOptions() Options {
	return Options{
		LongPressTime:       400,
		LongPressRepeatTime: 100,
	}
}

// Engine is a simulated engine instance.
type Engine struct {
	opts Options

	initCount  int
	printCbs   []native.PrintCallback
	ticks      atomic.Uint32
	inTimer    bool
	timerCalls int

	objects map[native.Obj]*object
	nextObj native.Obj

	styles    map[native.Style]*style
	nextStyle native.Style

	events    map[native.Event]*event
	nextEvent native.Event

	disp    *display
	indevs  []*indev
	focused *object
}

var _ native.ABI = (*Engine)(nil)

// New returns an engine that still needs Init.
func New(opts Options) *Engine {
	if opts.LongPressTime == 0 {
		opts.LongPressTime = DefaultOptions().LongPressTime
	}
	if opts.LongPressRepeatTime == 0 {
		opts.LongPressRepeatTime = DefaultOptions().LongPressRepeatTime
	}
	return &Engine{
		opts:      opts,
		objects:   make(map[native.Obj]*object),
		nextObj:   0x1000,
		styles:    make(map[native.Style]*style),
		nextStyle: 0x100,
		events:    make(map[native.Event]*event),
		nextEvent: 1,
	}
}

// ============================================================================
// Core
// ============================================================================

func (s *Engine) Init() {
	s.initCount++
	s.logf("Info", "lv_init: ready")
}

func (s *Engine) LogRegisterPrintCb(cb native.PrintCallback) {
	s.printCbs = append(s.printCbs, cb)
}

func (s *Engine) TickInc(ms uint32) {
	s.ticks.Add(ms)
}

// TimerHandler runs one pass: every input device is read, then the display
// is refreshed. It returns the time until the next pass is due.
func (s *Engine) TimerHandler() uint32 {
	s.mustInit()
	if s.inTimer {
		s.logf("Warn", "lv_timer_handler: already running")
		return 1
	}
	s.inTimer = true
	defer func() { s.inTimer = false }()
	s.timerCalls++

	for _, in := range s.indevs {
		s.readIndev(in)
	}
	if s.disp != nil {
		s.refresh()
	}
	return 1
}

func (s *Engine) mustInit() {
	if s.initCount == 0 {
		panic("sim: lv_init not called")
	}
}

func (s *Engine) logf(level, format string, args ...any) {
	if len(s.printCbs) == 0 {
		return
	}
	msg := fmt.Sprintf("[%s] %s", level, fmt.Sprintf(format, args...))
	for _, cb := range s.printCbs {
		cb(msg)
	}
}

// ============================================================================
// Test hooks
// ============================================================================

// InitCount reports how many times Init ran.
func (s *Engine) InitCount() int { return s.initCount }

// PrintCallbacks reports how many log sinks are registered.
func (s *Engine) PrintCallbacks() int { return len(s.printCbs) }

// Ticks returns the tick counter.
func (s *Engine) Ticks() uint32 { return s.ticks.Load() }

// TimerCalls reports how many timer handler passes ran.
func (s *Engine) TimerCalls() int { return s.timerCalls }

// Focus makes obj the target of keypad and encoder input.
func (s *Engine) Focus(obj native.Obj) {
	s.focused = s.objects[obj]
}

// Exists reports whether obj is alive.
func (s *Engine) Exists(obj native.Obj) bool {
	_, ok := s.objects[obj]
	return ok
}
