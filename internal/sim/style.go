package sim

import "github.com/agiangrant/lvgo/internal/native"

type style struct {
	props map[native.StyleProp]int32
}

type styleRef struct {
	style    *style
	selector native.StyleSelector
}

func (s *Engine) StyleCreate() native.Style {
	s.nextStyle++
	s.styles[s.nextStyle] = &style{props: make(map[native.StyleProp]int32)}
	return s.nextStyle
}

func (s *Engine) StyleSetProp(id native.Style, prop native.StyleProp, value int32) {
	st, ok := s.styles[id]
	if !ok {
		panic("sim: unknown style")
	}
	st.props[prop] = value
	for _, o := range s.objects {
		for _, ref := range o.styles {
			if ref.style == st {
				s.invalidateObj(o)
			}
		}
	}
}

func (s *Engine) ObjAddStyle(id native.Obj, sid native.Style, selector native.StyleSelector) {
	o := s.obj(id)
	st, ok := s.styles[sid]
	if !ok {
		panic("sim: unknown style")
	}
	o.styles = append(o.styles, styleRef{style: st, selector: selector})
	s.invalidateObj(o)
	s.send(o, native.EventStyleChanged)
}

// styleProp resolves prop for the main part of o in its current state. Styles
// added later take precedence, and a style only applies when its state bits
// are a subset of the object's state.
func (s *Engine) styleProp(o *object, prop native.StyleProp) (int32, bool) {
	for i := len(o.styles) - 1; i >= 0; i-- {
		ref := o.styles[i]
		if native.Part(ref.selector)&native.PartAny != native.PartMain {
			continue
		}
		st := native.State(ref.selector & 0xFFFF)
		if st&o.state != st {
			continue
		}
		if v, ok := ref.style.props[prop]; ok {
			return v, true
		}
	}
	return 0, false
}

// StyleValue exposes style resolution to tests.
func (s *Engine) StyleValue(id native.Obj, prop native.StyleProp) (int32, bool) {
	return s.styleProp(s.obj(id), prop)
}
