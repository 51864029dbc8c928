package lvgo

import (
	"errors"
	"image"
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/agiangrant/lvgo/internal/native"
)

func TestNewDrawBuffer(t *testing.T) {
	tests := []struct {
		w, h, divisor int
		want          int
	}{
		{320, 240, 10, 7680},
		{320, 240, 0, 320 * 240},
		{320, 240, 1000, 320},
		{0, 0, 10, 1},
	}
	for _, tt := range tests {
		if got := len(NewDrawBuffer(tt.w, tt.h, tt.divisor)); got != tt.want {
			t.Errorf("NewDrawBuffer(%d, %d, %d) has %d pixels, want %d", tt.w, tt.h, tt.divisor, got, tt.want)
		}
	}
}

func TestNewDisplay(t *testing.T) {
	e, _ := newTestEngine(t)
	f := newFrame()

	if msg := mustPanic(t, func() { NewDisplay(e, nil, f) }); !strings.Contains(msg, "empty draw buffer") {
		t.Errorf("panic = %q", msg)
	}
	d := NewDisplay(e, e.NewDrawBufferFor(f), f)
	if d.Target() != f {
		t.Error("Target() is not the registered frame")
	}
	if msg := mustPanic(t, func() { NewDisplay(e, e.NewDrawBufferFor(f), f) }); !strings.Contains(msg, "already registered") {
		t.Errorf("panic = %q", msg)
	}
}

func TestFlushPixels(t *testing.T) {
	d, s := newTestDisplay(t)
	e := d.Engine()
	red := NewStyle(e).SetBgColor(ColorRed)
	ActiveScreen(d, func(scr *Screen[counter]) counter {
		NewBtn(scr.Obj).SetPos(10, 10).SetSize(40, 20).AddStyle(red, Select(PartMain, StateDefault))
		return counter{}
	})
	e.RunOnce(nil)

	f := d.Target()
	if got, want := s.FlushCount(), testHeight/24; got != want {
		t.Errorf("FlushCount = %d, want %d", got, want)
	}
	if s.FlushReadyCount() != s.FlushCount() {
		t.Errorf("FlushReadyCount = %d, FlushCount = %d", s.FlushReadyCount(), s.FlushCount())
	}
	tests := []struct {
		x, y int
		want Color
	}{
		{0, 0, ColorWhite},
		{10, 10, ColorRed},
		{49, 29, ColorRed},
		{50, 30, ColorWhite},
		{319, 239, ColorWhite},
	}
	for _, tt := range tests {
		if got := f.at(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %#04x, want %#04x", tt.x, tt.y, uint16(got), uint16(tt.want))
		}
	}
}

func TestFlushTrampoline(t *testing.T) {
	tests := []struct {
		name string
		area native.Area
	}{
		{"single pixel", native.Area{X1: 7, Y1: 9, X2: 7, Y2: 9}},
		{"row", native.Area{X1: 0, Y1: 0, X2: testWidth - 1, Y2: 0}},
		{"block", native.Area{X1: 2, Y1: 3, X2: 5, Y2: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, s := newTestDisplay(t)
			e := d.Engine()
			n := tt.area.Width() * tt.area.Height()
			src := make([]Color, n)
			for i := range src {
				src[i] = Color(0x1000 + i)
			}

			before := s.FlushReadyCount()
			flushTrampoline[*frame](e)(d.drv, &tt.area, unsafe.Pointer(&src[0]))

			f := d.Target()
			if f.fills != 1 {
				t.Fatalf("target filled %d times, want 1", f.fills)
			}
			wantArea := image.Rect(int(tt.area.X1), int(tt.area.Y1), int(tt.area.X2)+1, int(tt.area.Y2)+1)
			if f.lastArea != wantArea {
				t.Errorf("area = %v, want %v", f.lastArea, wantArea)
			}
			if len(f.last) != wantArea.Dx()*wantArea.Dy() {
				t.Errorf("got %d colors, want %d", len(f.last), wantArea.Dx()*wantArea.Dy())
			}
			if diff := cmp.Diff(src, f.last); diff != "" {
				t.Errorf("colors mismatch (-want +got):\n%s", diff)
			}
			if got := s.FlushReadyCount() - before; got != 1 {
				t.Errorf("flush ready signalled %d times, want 1", got)
			}
		})
	}
}

func TestFlushReadyOnSinkFailure(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		panic bool
	}{
		{name: "error", err: errors.New("bus error")},
		{name: "panic", panic: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, s := newTestDisplay(t)
			f := d.Target()
			f.err, f.panic = tt.err, tt.panic

			func() {
				defer func() { recover() }()
				d.Engine().RunOnce(nil)
			}()

			if s.FlushCount() == 0 {
				t.Fatal("nothing was flushed")
			}
			if s.FlushReadyCount() != s.FlushCount() {
				t.Errorf("FlushReadyCount = %d, FlushCount = %d", s.FlushReadyCount(), s.FlushCount())
			}
			if tt.panic && s.FlushCount() != 1 {
				t.Errorf("FlushCount = %d after a panicking sink, want 1", s.FlushCount())
			}
		})
	}
}

func TestLoadScreenRetiresPrevious(t *testing.T) {
	d, s := newTestDisplay(t)
	var old *Btn[counter]
	first := ActiveScreen(d, func(scr *Screen[counter]) counter {
		old = NewBtn(scr.Obj)
		return counter{}
	})
	second := NewScreen(d, func(scr *Screen[counter]) counter { return counter{} })

	d.LoadScreen(second)
	if s.ActiveScreen() != second.raw {
		t.Fatalf("active screen = %#x, want %#x", s.ActiveScreen(), second.raw)
	}
	d.LoadScreen(second)

	if msg := mustPanic(t, func() { old.SetPos(0, 0) }); !strings.Contains(msg, "stale object handle") {
		t.Errorf("panic = %q", msg)
	}
	if msg := mustPanic(t, func() { d.LoadScreen(first) }); !strings.Contains(msg, "retired") {
		t.Errorf("panic = %q", msg)
	}
	if s.ActiveScreen() != second.raw {
		t.Errorf("retired screen was loaded")
	}
}

func TestGridTemplatesTerminated(t *testing.T) {
	d, s := newTestDisplay(t)
	var grid *Obj[counter]
	ActiveScreen(d, func(scr *Screen[counter]) counter {
		cols := []Coord{GridFR(1), 100}
		rows := []Coord{40, GridTemplateLast}
		grid = NewObj(scr.Obj).SetGridDscArray(cols, rows)
		cols[0] = 7
		return counter{}
	})

	cols, rows := s.Grid(grid.raw)
	if len(cols) != 3 || cols[0] != native.GridFR(1) || cols[2] != native.GridTemplateLast {
		t.Errorf("cols = %v", cols)
	}
	if len(rows) != 2 || rows[1] != native.GridTemplateLast {
		t.Errorf("rows = %v", rows)
	}
}
