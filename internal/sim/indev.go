package sim

import "github.com/agiangrant/lvgo/internal/native"

// Keys of lv_key_t the simulator understands.
const (
	keyRight = 19
	keyLeft  = 20
	keyEnter = 10
)

// maxReadsPerPass bounds continue_reading loops.
const maxReadsPerPass = 16

type indev struct {
	id  native.Indev
	drv *native.IndevDrv

	last    native.IndevData
	pressed bool

	// Pointer processing.
	act        *object
	lost       bool
	pressTime  uint32
	longSent   bool
	lastRepeat uint32

	keys []uint32
}

func (s *Engine) IndevDrvInit(drv *native.IndevDrv) {
	*drv = native.IndevDrv{}
}

func (s *Engine) IndevDrvRegister(drv *native.IndevDrv) native.Indev {
	s.mustInit()
	if drv.Disp == 0 {
		if s.disp == nil {
			s.logf("Warn", "lv_indev_drv_register: no display to assign")
			return 0
		}
		drv.Disp = dispID
	}
	in := &indev{
		id:  native.Indev(0x20 + len(s.indevs)),
		drv: drv,
	}
	s.indevs = append(s.indevs, in)
	return in.id
}

func (s *Engine) readIndev(in *indev) {
	if in.drv.ReadCb == nil {
		return
	}
	for range maxReadsPerPass {
		var data native.IndevData
		switch in.drv.Type {
		case native.IndevTypePointer:
			data.Point = in.last.Point
		case native.IndevTypeKeypad:
			data.Key = in.last.Key
		}
		in.drv.ReadCb(in.drv, &data)
		in.last = data

		switch in.drv.Type {
		case native.IndevTypePointer:
			s.procPointer(in, data)
		case native.IndevTypeKeypad:
			s.procKeypad(in, data)
		case native.IndevTypeEncoder:
			s.procEncoder(in, data)
		}
		if !data.ContinueReading {
			return
		}
	}
}

// ============================================================================
// Pointer
// ============================================================================

func (s *Engine) procPointer(in *indev, data native.IndevData) {
	now := s.ticks.Load()
	if data.State == native.IndevStatePressed {
		if in.act == nil && !in.lost {
			hit := s.hitTest(data.Point)
			if hit == nil {
				return
			}
			in.act = hit
			in.pressTime = now
			in.longSent = false
			hit.state |= native.StatePressed
			s.invalidateObj(hit)
			if !s.sendAlive(hit, native.EventPressed) {
				in.act = nil
				return
			}
			s.sendAlive(hit, native.EventPressing)
			return
		}
		if in.act == nil {
			return
		}
		act := in.act
		if act.flags&native.FlagPressLock == 0 && s.hitTest(data.Point) != act {
			act.state &^= native.StatePressed
			in.act, in.lost = nil, true
			s.sendAlive(act, native.EventPressLost)
			return
		}
		if !s.sendAlive(act, native.EventPressing) {
			return
		}
		switch {
		case !in.longSent && now-in.pressTime >= s.opts.LongPressTime:
			in.longSent = true
			in.lastRepeat = now
			s.sendAlive(act, native.EventLongPressed)
		case in.longSent && now-in.lastRepeat >= s.opts.LongPressRepeatTime:
			in.lastRepeat = now
			s.sendAlive(act, native.EventLongPressedRepeat)
		}
		return
	}

	in.lost = false
	act := in.act
	if act == nil {
		return
	}
	in.act = nil
	act.state &^= native.StatePressed
	s.invalidateObj(act)
	if act.flags&native.FlagCheckable != 0 {
		act.state ^= native.StateChecked
		if !s.sendAlive(act, native.EventValueChanged) {
			return
		}
	}
	if !s.sendAlive(act, native.EventReleased) {
		return
	}
	if !in.longSent {
		if !s.sendAlive(act, native.EventShortClicked) {
			return
		}
	}
	s.sendAlive(act, native.EventClicked)
}

// sendAlive sends code to o and reports whether o survived its callbacks.
func (s *Engine) sendAlive(o *object, code native.EventCode) bool {
	if _, ok := s.objects[o.id]; !ok {
		return false
	}
	s.send(o, code)
	_, ok := s.objects[o.id]
	return ok
}

// hitTest returns the topmost clickable object under p on the active screen.
func (s *Engine) hitTest(p native.Point) *object {
	if s.disp == nil || s.disp.act == nil {
		return nil
	}
	s.layout(s.disp.act)
	return searchObj(s.disp.act, p)
}

func searchObj(o *object, p native.Point) *object {
	if o.flags&native.FlagHidden != 0 {
		return nil
	}
	inside := p.X >= o.abs.X1 && p.X <= o.abs.X2 && p.Y >= o.abs.Y1 && p.Y <= o.abs.Y2
	if !inside && o.flags&native.FlagOverflowVisible == 0 {
		return nil
	}
	for i := len(o.children) - 1; i >= 0; i-- {
		if hit := searchObj(o.children[i], p); hit != nil {
			return hit
		}
	}
	if inside && o.flags&native.FlagClickable != 0 && o.state&native.StateDisabled == 0 {
		return o
	}
	return nil
}

// ============================================================================
// Keypad and encoder
// ============================================================================

func (s *Engine) procKeypad(in *indev, data native.IndevData) {
	pressed := data.State == native.IndevStatePressed
	defer func() { in.pressed = pressed }()

	f := s.focused
	if f == nil || pressed == in.pressed {
		return
	}
	if pressed {
		in.keys = append(in.keys, data.Key)
		if !s.sendAlive(f, native.EventKey) {
			return
		}
		if data.Key == keyEnter {
			f.state |= native.StatePressed
			s.sendAlive(f, native.EventPressed)
		}
		return
	}
	if data.Key == keyEnter {
		f.state &^= native.StatePressed
		s.click(f)
	}
}

func (s *Engine) procEncoder(in *indev, data native.IndevData) {
	f := s.focused
	if f != nil && data.EncDiff != 0 {
		key := uint32(keyRight)
		n := int(data.EncDiff)
		if n < 0 {
			key, n = keyLeft, -n
		}
		for range n {
			in.keys = append(in.keys, key)
			if !s.sendAlive(f, native.EventKey) {
				f = nil
				break
			}
		}
	}

	pressed := data.State == native.IndevStatePressed
	defer func() { in.pressed = pressed }()
	if f == nil || pressed == in.pressed {
		return
	}
	if pressed {
		f.state |= native.StatePressed
		s.sendAlive(f, native.EventPressed)
		return
	}
	f.state &^= native.StatePressed
	s.click(f)
}

func (s *Engine) click(o *object) {
	if !s.sendAlive(o, native.EventReleased) {
		return
	}
	if !s.sendAlive(o, native.EventShortClicked) {
		return
	}
	s.sendAlive(o, native.EventClicked)
}

// ============================================================================
// Test hooks
// ============================================================================

// LastInput returns the record the device's read callback produced last.
func (s *Engine) LastInput(id native.Indev) native.IndevData {
	for _, in := range s.indevs {
		if in.id == id {
			return in.last
		}
	}
	return native.IndevData{}
}

// Keys returns the key codes delivered by a keypad or encoder so far.
func (s *Engine) Keys(id native.Indev) []uint32 {
	for _, in := range s.indevs {
		if in.id == id {
			return in.keys
		}
	}
	return nil
}
