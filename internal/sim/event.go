package sim

import "github.com/agiangrant/lvgo/internal/native"

type event struct {
	code          native.EventCode
	target        *object
	currentTarget *object
	userData      uintptr
}

func (s *Engine) ObjAddEventCb(id native.Obj, cb native.EventCallback, filter native.EventCode, userData uintptr) {
	o := s.obj(id)
	o.callbacks = append(o.callbacks, callback{fn: cb, filter: filter, userData: userData})
}

func (s *Engine) EventGetCode(e native.Event) native.EventCode {
	return s.ev(e).code &^ native.EventPreprocess
}

func (s *Engine) EventGetCurrentTarget(e native.Event) native.Obj {
	return s.ev(e).currentTarget.id
}

func (s *Engine) EventGetTarget(e native.Event) native.Obj {
	return s.ev(e).target.id
}

func (s *Engine) EventGetUserData(e native.Event) uintptr {
	return s.ev(e).userData
}

func (s *Engine) ev(e native.Event) *event {
	rec, ok := s.events[e]
	if !ok {
		panic("sim: event accessed outside its callback")
	}
	return rec
}

// Send raises code on obj the way lv_event_send does.
func (s *Engine) Send(id native.Obj, code native.EventCode) {
	s.send(s.obj(id), code)
}

func (s *Engine) send(o *object, code native.EventCode) {
	s.nextEvent++
	id := s.nextEvent
	rec := &event{code: code, target: o, currentTarget: o}
	s.events[id] = rec
	defer delete(s.events, id)

	for cur := o; cur != nil; {
		rec.currentTarget = cur
		if !s.callEventCbs(id, rec, cur) {
			return
		}
		if !bubbles(code) || cur.flags&native.FlagEventBubble == 0 {
			return
		}
		cur = cur.parent
	}
}

// callEventCbs runs obj's callbacks matching the event. It returns false once
// obj has been deleted by one of them.
func (s *Engine) callEventCbs(id native.Event, rec *event, o *object) bool {
	for _, cb := range append([]callback(nil), o.callbacks...) {
		if cb.filter != native.EventAll && cb.filter != rec.code {
			continue
		}
		rec.userData = cb.userData
		cb.fn(id)
		if rec.code != native.EventDelete {
			if _, alive := s.objects[o.id]; !alive {
				return false
			}
		}
	}
	return true
}

func bubbles(code native.EventCode) bool {
	switch code {
	case native.EventHitTest,
		native.EventCoverCheck,
		native.EventRefrExtDrawSize,
		native.EventDrawMainBegin,
		native.EventDrawMain,
		native.EventDrawMainEnd,
		native.EventDrawPostBegin,
		native.EventDrawPost,
		native.EventDrawPostEnd,
		native.EventDrawPartBegin,
		native.EventDrawPartEnd,
		native.EventRefresh,
		native.EventDelete,
		native.EventChildCreated,
		native.EventChildDeleted,
		native.EventChildChanged,
		native.EventSizeChanged,
		native.EventStyleChanged,
		native.EventGetSelfSize:
		return false
	}
	return true
}

// SendRaw raises an arbitrary code, including ones outside the engine's
// enumeration, on obj without bubbling.
func (s *Engine) SendRaw(id native.Obj, code native.EventCode) {
	o := s.obj(id)
	s.nextEvent++
	eid := s.nextEvent
	rec := &event{code: code, target: o, currentTarget: o}
	s.events[eid] = rec
	defer delete(s.events, eid)
	for _, cb := range append([]callback(nil), o.callbacks...) {
		rec.userData = cb.userData
		cb.fn(eid)
	}
}

// Callbacks reports how many event callbacks are attached to obj.
func (s *Engine) Callbacks(id native.Obj) int {
	return len(s.obj(id).callbacks)
}
