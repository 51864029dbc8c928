package lvgo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agiangrant/lvgo/internal/native"
)

func TestOnEvent(t *testing.T) {
	tests := []struct {
		name      string
		bubble    bool
		sendChild bool
		wantCalls int
		wantChild bool
	}{
		{name: "direct", sendChild: false, wantCalls: 1},
		{name: "bubbled", bubble: true, sendChild: true, wantCalls: 1, wantChild: true},
		{name: "not bubbling", bubble: false, sendChild: true, wantCalls: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, s := newTestDisplay(t)
			var (
				parent, child *Obj[counter]
				calls         int
				gotChild      *Obj[counter]
			)
			ActiveScreen(d, func(scr *Screen[counter]) counter {
				parent = NewObj(scr.Obj)
				child = NewBtn(parent).Obj
				if tt.bubble {
					child.AddFlag(FlagEventBubble)
				}
				parent.OnEvent(EventClicked, func(_ *counter, c *Obj[counter]) {
					calls++
					gotChild = c
				})
				return counter{}
			})

			if tt.sendChild {
				s.Send(child.raw, native.EventClicked)
			} else {
				s.Send(parent.raw, native.EventClicked)
			}

			if calls != tt.wantCalls {
				t.Fatalf("handler ran %d times, want %d", calls, tt.wantCalls)
			}
			if tt.wantCalls == 0 {
				return
			}
			if tt.wantChild != (gotChild != nil) {
				t.Fatalf("child = %v, want child %v", gotChild, tt.wantChild)
			}
			if tt.wantChild && !gotChild.Is(child) {
				t.Errorf("child is %#x, want %#x", gotChild.Raw(), child.Raw())
			}
		})
	}
}

func TestOnAnyEvent(t *testing.T) {
	d, s := newTestDisplay(t)
	var btn *Btn[counter]
	scr := ActiveScreen(d, func(scr *Screen[counter]) counter {
		btn = NewBtn(scr.Obj)
		btn.OnAnyEvent(func(c *counter, ev Event, _ *Obj[counter]) {
			c.events = append(c.events, ev)
		})
		return counter{}
	})

	s.Send(btn.raw, native.EventPressed)
	s.Send(btn.raw, native.EventFocused)
	s.Send(btn.raw, native.EventClicked)

	want := []Event{EventPressed, EventFocused, EventClicked}
	if diff := cmp.Diff(want, scr.Context().events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlerContext(t *testing.T) {
	d, s := newTestDisplay(t)
	var got *counter
	scr := ActiveScreen(d, func(scr *Screen[counter]) counter {
		scr.OnEvent(EventClicked, func(c *counter, _ *Obj[counter]) {
			got = c
			c.clicks++
		})
		return counter{clicks: 40}
	})
	s.Send(scr.raw, native.EventClicked)
	s.Send(scr.raw, native.EventClicked)

	if got != scr.Context() {
		t.Errorf("handler context %p, want screen context %p", got, scr.Context())
	}
	if scr.Context().clicks != 42 {
		t.Errorf("clicks = %d, want 42", scr.Context().clicks)
	}
}

func TestEventBeforeContext(t *testing.T) {
	d, s := newTestDisplay(t)
	msg := mustPanic(t, func() {
		ActiveScreen(d, func(scr *Screen[counter]) counter {
			scr.OnEvent(EventClicked, func(*counter, *Obj[counter]) {})
			s.Send(scr.raw, native.EventClicked)
			return counter{}
		})
	})
	if !strings.Contains(msg, "context not initialized") {
		t.Errorf("panic = %q", msg)
	}
}

func TestUnknownEventCodeDropped(t *testing.T) {
	d, s := newTestDisplay(t)
	var calls int
	scr := ActiveScreen(d, func(scr *Screen[counter]) counter {
		scr.OnAnyEvent(func(*counter, Event, *Obj[counter]) { calls++ })
		return counter{}
	})

	for _, code := range []native.EventCode{native.EventAll, native.EventLast, native.EventLast + 5} {
		s.SendRaw(scr.raw, code)
	}
	if calls != 0 {
		t.Errorf("handler ran %d times for unknown codes", calls)
	}
	s.SendRaw(scr.raw, native.EventClicked|native.EventPreprocess)
	if calls != 1 {
		t.Errorf("handler ran %d times for a preprocessed click, want 1", calls)
	}
}

func TestDeleteReleasesRegistrations(t *testing.T) {
	d, s := newTestDisplay(t)
	e := d.Engine()
	base := e.reg.Len()

	var btn *Btn[counter]
	var deleted int
	ActiveScreen(d, func(scr *Screen[counter]) counter {
		btn = NewBtn(scr.Obj)
		btn.OnEvent(EventClicked, func(*counter, *Obj[counter]) {})
		btn.OnEvent(EventDelete, func(*counter, *Obj[counter]) { deleted++ })
		return counter{}
	})
	if got, want := e.reg.Len(), base+3; got != want {
		t.Fatalf("registrations = %d, want %d", got, want)
	}

	s.Delete(btn.raw)
	if deleted != 1 {
		t.Errorf("Delete handler ran %d times, want 1", deleted)
	}
	msg := mustPanic(t, func() { btn.SetPos(1, 1) })
	if !strings.Contains(msg, "has been deleted") {
		t.Errorf("panic = %q", msg)
	}

	e.RunOnce(nil)
	if got := e.reg.Len(); got != base {
		t.Errorf("registrations after pass = %d, want %d", got, base)
	}
	msg = mustPanic(t, func() { btn.SetPos(2, 2) })
	if !strings.Contains(msg, "has been deleted") {
		t.Errorf("panic after sweep = %q", msg)
	}

	e.arena.created(btn.raw)
	if e.arena.deleted(btn.raw) {
		t.Error("reused address still reported deleted")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{EventClicked, "Clicked"},
		{EventDelete, "Delete"},
		{Event(250), "Event(250)"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", uint8(tt.ev), got, tt.want)
		}
	}
}
