package lvgo

import (
	"github.com/agiangrant/lvgo/internal/handles"
	"github.com/agiangrant/lvgo/internal/native"
)

// DeviceKind is the engine's input device type.
type DeviceKind uint8

const (
	DevicePointer = DeviceKind(native.IndevTypePointer)
	DeviceKeypad  = DeviceKind(native.IndevTypeKeypad)
	DeviceButton  = DeviceKind(native.IndevTypeButton)
	DeviceEncoder = DeviceKind(native.IndevTypeEncoder)
)

// InputState is the pressed status reported by a device.
type InputState uint8

const (
	InputReleased = InputState(native.IndevStateReleased)
	InputPressed  = InputState(native.IndevStatePressed)
)

// Point is a position in display coordinates.
type Point struct {
	X, Y Coord
}

// PollRecord is what a device reports when the engine polls it. Fields the
// device does not set keep the values the engine prefilled: the last point
// for pointers and the last key for keypads.
type PollRecord struct {
	Point       Point
	Key         uint32
	ButtonID    uint32
	EncoderDiff int16
	State       InputState
	// ContinueReading asks the engine to poll again in the same pass.
	ContinueReading bool
}

// InputDeviceState is a device's state as seen by the engine.
type InputDeviceState interface {
	DeviceKind() DeviceKind
	Populate(rec *PollRecord)
}

// statePtr lets device state types implement InputDeviceState on their
// pointer receiver while InputDevice is parameterized by the value type.
type statePtr[S any] interface {
	*S
	InputDeviceState
}

// InputDevice binds a host-owned state value to an engine input driver.
// The host mutates the state between passes; the engine reads it when it
// polls. Only the latest state is seen: presses shorter than a pass are lost.
type InputDevice[S any] struct {
	raw    native.Indev
	drv    *native.IndevDrv
	state  *S
	handle handles.Handle
}

// NewInputDevice registers a device for d whose state starts as initial.
func NewInputDevice[T DrawTarget, S any, PS statePtr[S]](d *Display[T], initial S) *InputDevice[S] {
	st := new(S)
	*st = initial
	dev := &InputDevice[S]{state: st}
	dev.raw, dev.drv, dev.handle = registerIndev(d.e, d.raw, PS(st))
	return dev
}

// State returns the device state for the host to update.
func (d *InputDevice[S]) State() *S { return d.state }

// generator produces a device record from the state passed to the current
// pass.
type generator[S, I any, PI statePtr[I]] struct {
	gen func(state *S) I
}

func (g generator[S, I, PI]) DeviceKind() DeviceKind {
	var zero I
	return PI(&zero).DeviceKind()
}

func (g generator[S, I, PI]) Populate(rec *PollRecord) {
	in := g.gen(CurrentState[*S]())
	PI(&in).Populate(rec)
}

// NewInputGenerator registers a device that has no state of its own: on
// every poll gen is called with the state given to RunOnce, which must be a
// *S, and the value it returns is reported.
func NewInputGenerator[T DrawTarget, S, I any, PI statePtr[I]](d *Display[T], gen func(state *S) I) {
	registerIndev(d.e, d.raw, generator[S, I, PI]{gen: gen})
}

func registerIndev(e *Engine, disp native.Disp, src InputDeviceState) (native.Indev, *native.IndevDrv, handles.Handle) {
	h := e.reg.Register(src)
	drv := new(native.IndevDrv)
	e.abi.IndevDrvInit(drv)
	drv.Type = native.IndevType(src.DeviceKind())
	drv.ReadCb = e.readTrampoline
	drv.Disp = disp
	drv.UserData = uintptr(h)

	raw := e.abi.IndevDrvRegister(drv)
	if raw == 0 {
		panic("lvgo: input device registration failed")
	}
	e.mu.Lock()
	e.indevs = append(e.indevs, drv)
	e.mu.Unlock()
	e.log.V(1).Info("input device registered", "kind", src.DeviceKind())
	return raw, drv, h
}

// readTrampoline polls the state registered under the driver's user data.
func (e *Engine) readTrampoline(drv *native.IndevDrv, data *native.IndevData) {
	v, ok := e.reg.Value(handles.Handle(drv.UserData))
	if !ok {
		return
	}
	rec := PollRecord{
		Point:           Point{X: data.Point.X, Y: data.Point.Y},
		Key:             data.Key,
		ButtonID:        data.BtnID,
		EncoderDiff:     data.EncDiff,
		State:           InputState(data.State),
		ContinueReading: data.ContinueReading,
	}
	v.(InputDeviceState).Populate(&rec)
	*data = native.IndevData{
		Point:           native.Point{X: rec.Point.X, Y: rec.Point.Y},
		Key:             rec.Key,
		BtnID:           rec.ButtonID,
		EncDiff:         rec.EncoderDiff,
		State:           native.IndevState(rec.State),
		ContinueReading: rec.ContinueReading,
	}
}

// ============================================================================
// Reference device states
// ============================================================================

// TouchPad is the state of a single-touch pointer.
type TouchPad struct {
	Pressed bool
	X, Y    Coord
}

// Touch returns a pressed touch pad state at x, y.
func Touch(x, y Coord) TouchPad { return TouchPad{Pressed: true, X: x, Y: y} }

// Untouched is the released touch pad state.
var Untouched = TouchPad{}

func (*TouchPad) DeviceKind() DeviceKind { return DevicePointer }

// Populate reports the touch point while pressed. On release the point is
// left alone, so the engine sees the release where the touch ended.
func (t *TouchPad) Populate(rec *PollRecord) {
	if !t.Pressed {
		rec.State = InputReleased
		return
	}
	rec.Point = Point{X: t.X, Y: t.Y}
	rec.State = InputPressed
}

// Keypad is the state of a key-based device.
type Keypad struct {
	Key     uint32
	Pressed bool
}

func (*Keypad) DeviceKind() DeviceKind { return DeviceKeypad }

func (k *Keypad) Populate(rec *PollRecord) {
	rec.Key = k.Key
	rec.State = InputReleased
	if k.Pressed {
		rec.State = InputPressed
	}
}

// Encoder is the state of a rotary encoder with a push button.
type Encoder struct {
	// Diff accumulates steps since the last poll; polling consumes it.
	Diff    int16
	Pressed bool
}

func (*Encoder) DeviceKind() DeviceKind { return DeviceEncoder }

func (e *Encoder) Populate(rec *PollRecord) {
	rec.EncoderDiff = e.Diff
	e.Diff = 0
	rec.State = InputReleased
	if e.Pressed {
		rec.State = InputPressed
	}
}

// Rotate adds steps to the encoder.
func (e *Encoder) Rotate(steps int16) { e.Diff += steps }

// Keys understood by the engine's keypad and encoder handling.
const (
	KeyUp        uint32 = 17
	KeyDown      uint32 = 18
	KeyRight     uint32 = 19
	KeyLeft      uint32 = 20
	KeyEsc       uint32 = 27
	KeyDel       uint32 = 127
	KeyBackspace uint32 = 8
	KeyEnter     uint32 = 10
	KeyNext      uint32 = 9
	KeyPrev      uint32 = 11
	KeyHome      uint32 = 2
	KeyEnd       uint32 = 3
)
