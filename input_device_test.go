package lvgo

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agiangrant/lvgo/internal/native"
)

// tap presses at (x, y) for one pass and releases on the next.
func tap(e *Engine, dev *InputDevice[TouchPad], x, y Coord) {
	*dev.State() = Touch(x, y)
	e.RunOnce(nil)
	*dev.State() = Untouched
	e.RunOnce(nil)
}

func TestClickCounter(t *testing.T) {
	d, _ := newTestDisplay(t)
	e := d.Engine()
	scr := ActiveScreen(d, func(scr *Screen[counter]) counter {
		NewBtn(scr.Obj).SetPos(10, 10).OnEvent(EventClicked, func(c *counter, _ *Obj[counter]) {
			c.clicks++
		})
		return counter{}
	})
	dev := NewInputDevice(d, Untouched)

	tap(e, dev, 20, 20)
	tap(e, dev, 20, 20)
	tap(e, dev, 300, 200)

	if got := scr.Context().clicks; got != 2 {
		t.Errorf("clicks = %d, want 2", got)
	}
}

func TestClickSequence(t *testing.T) {
	d, _ := newTestDisplay(t)
	e := d.Engine()
	scr := ActiveScreen(d, func(scr *Screen[counter]) counter {
		NewBtn(scr.Obj).OnAnyEvent(func(c *counter, ev Event, _ *Obj[counter]) {
			switch ev {
			case EventPressed, EventReleased, EventShortClicked, EventClicked:
				c.events = append(c.events, ev)
			}
		})
		return counter{}
	})
	dev := NewInputDevice(d, Untouched)
	tap(e, dev, 5, 5)

	want := []Event{EventPressed, EventReleased, EventShortClicked, EventClicked}
	if diff := cmp.Diff(want, scr.Context().events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestTouchPadRelease(t *testing.T) {
	d, s := newTestDisplay(t)
	e := d.Engine()
	dev := NewInputDevice(d, Touch(30, 40))

	e.RunOnce(nil)
	if got := s.LastInput(dev.raw); got.State != native.IndevStatePressed {
		t.Fatalf("state while touched = %v, want pressed", got.State)
	}

	*dev.State() = Untouched
	e.RunOnce(nil)
	want := native.IndevData{Point: native.Point{X: 30, Y: 40}, State: native.IndevStateReleased}
	if diff := cmp.Diff(want, s.LastInput(dev.raw)); diff != "" {
		t.Errorf("released record mismatch (-want +got):\n%s", diff)
	}
}

func TestPopulate(t *testing.T) {
	tests := []struct {
		name  string
		state InputDeviceState
		kind  DeviceKind
		want  PollRecord
	}{
		{
			name:  "touched",
			state: &TouchPad{Pressed: true, X: 3, Y: 4},
			kind:  DevicePointer,
			want:  PollRecord{Point: Point{X: 3, Y: 4}, State: InputPressed},
		},
		{
			name:  "untouched keeps point",
			state: &TouchPad{X: 3, Y: 4},
			kind:  DevicePointer,
			want:  PollRecord{Point: Point{X: 9, Y: 9}, State: InputReleased},
		},
		{
			name:  "key down",
			state: &Keypad{Key: KeyEnter, Pressed: true},
			kind:  DeviceKeypad,
			want:  PollRecord{Point: Point{X: 9, Y: 9}, Key: KeyEnter, State: InputPressed},
		},
		{
			name:  "encoder",
			state: &Encoder{Diff: -2},
			kind:  DeviceEncoder,
			want:  PollRecord{Point: Point{X: 9, Y: 9}, EncoderDiff: -2, State: InputReleased},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.DeviceKind(); got != tt.kind {
				t.Errorf("DeviceKind() = %v, want %v", got, tt.kind)
			}
			rec := PollRecord{Point: Point{X: 9, Y: 9}}
			tt.state.Populate(&rec)
			if diff := cmp.Diff(tt.want, rec); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKeypad(t *testing.T) {
	d, s := newTestDisplay(t)
	e := d.Engine()
	var btn *Btn[counter]
	scr := ActiveScreen(d, func(scr *Screen[counter]) counter {
		btn = NewBtn(scr.Obj)
		btn.OnEvent(EventClicked, func(c *counter, _ *Obj[counter]) { c.clicks++ })
		return counter{}
	})
	s.Focus(btn.raw)
	dev := NewInputDevice(d, Keypad{})

	*dev.State() = Keypad{Key: KeyEnter, Pressed: true}
	e.RunOnce(nil)
	*dev.State() = Keypad{Key: KeyEnter}
	e.RunOnce(nil)

	if diff := cmp.Diff([]uint32{KeyEnter}, s.Keys(dev.raw)); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if scr.Context().clicks != 1 {
		t.Errorf("clicks = %d, want 1", scr.Context().clicks)
	}
}

func TestEncoder(t *testing.T) {
	d, s := newTestDisplay(t)
	e := d.Engine()
	var slider *Slider[counter]
	ActiveScreen(d, func(scr *Screen[counter]) counter {
		slider = NewSlider(scr.Obj)
		return counter{}
	})
	s.Focus(slider.raw)
	dev := NewInputDevice(d, Encoder{})

	dev.State().Rotate(2)
	dev.State().Rotate(-3)
	e.RunOnce(nil)
	dev.State().Rotate(1)
	e.RunOnce(nil)

	want := []uint32{KeyLeft, KeyRight}
	if diff := cmp.Diff(want, s.Keys(dev.raw)); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if dev.State().Diff != 0 {
		t.Errorf("Diff = %d after polling, want 0", dev.State().Diff)
	}
}

func TestInputGenerator(t *testing.T) {
	type app struct {
		touch  TouchPad
		clicks int
	}
	d, _ := newTestDisplay(t)
	e := d.Engine()
	ActiveScreen(d, func(scr *Screen[counter]) counter {
		NewBtn(scr.Obj).OnEvent(EventClicked, func(*counter, *Obj[counter]) {
			CurrentState[*app]().clicks++
		})
		return counter{}
	})
	NewInputGenerator(d, func(a *app) TouchPad { return a.touch })

	st := &app{touch: Touch(10, 10)}
	e.RunOnce(st)
	st.touch = Untouched
	e.RunOnce(st)

	if st.clicks != 1 {
		t.Errorf("clicks = %d, want 1", st.clicks)
	}
}
