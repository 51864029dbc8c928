package lvgo

import (
	"image"
	"iter"
	"testing"

	"github.com/go-logr/logr"

	"github.com/agiangrant/lvgo/internal/sim"
)

const (
	testWidth  = 320
	testHeight = 240
)

// frame is a DrawTarget keeping a full copy of the screen.
type frame struct {
	px    []Color
	fills int
	err   error
	panic bool

	// Area and colors of the most recent fill, in the order received.
	lastArea image.Rectangle
	last     []Color
}

func newFrame() *frame { return &frame{px: make([]Color, testWidth*testHeight)} }

func (f *frame) Bounds() image.Rectangle { return image.Rect(0, 0, testWidth, testHeight) }

func (f *frame) FillContiguous(area image.Rectangle, colors iter.Seq[Color]) error {
	f.fills++
	if f.panic {
		panic("frame: device gone")
	}
	f.lastArea, f.last = area, f.last[:0]
	i := 0
	for c := range colors {
		f.last = append(f.last, c)
		x := area.Min.X + i%area.Dx()
		y := area.Min.Y + i/area.Dx()
		f.px[y*testWidth+x] = c
		i++
	}
	return f.err
}

func (f *frame) at(x, y int) Color { return f.px[y*testWidth+x] }

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Backend = BackendSim
	cfg.Logger = logr.Discard()
	return cfg
}

func newTestEngine(t *testing.T) (*Engine, *sim.Engine) {
	t.Helper()
	s := sim.New(sim.DefaultOptions())
	return newEngine(s, testConfig()), s
}

func newTestDisplay(t *testing.T) (*Display[*frame], *sim.Engine) {
	t.Helper()
	e, s := newTestEngine(t)
	f := newFrame()
	return NewDisplay(e, e.NewDrawBufferFor(f), f), s
}

// mustPanic runs fn and returns the recovered panic message.
func mustPanic(t *testing.T, fn func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		msg, _ = r.(string)
	}()
	fn()
	return ""
}

type counter struct {
	clicks int
	events []Event
}
