package lvgo

import (
	"fmt"

	"github.com/agiangrant/lvgo/internal/native"
)

// Event is an engine event code. The set is closed and maps one to one onto
// the codes of the linked engine.
type Event uint8

const (
	// Input device events
	EventPressed           = Event(native.EventPressed)
	EventPressing          = Event(native.EventPressing)
	EventPressLost         = Event(native.EventPressLost)
	EventShortClicked      = Event(native.EventShortClicked)
	EventLongPressed       = Event(native.EventLongPressed)
	EventLongPressedRepeat = Event(native.EventLongPressedRepeat)
	EventClicked           = Event(native.EventClicked)
	EventReleased          = Event(native.EventReleased)
	EventScrollBegin       = Event(native.EventScrollBegin)
	EventScrollEnd         = Event(native.EventScrollEnd)
	EventScroll            = Event(native.EventScroll)
	EventGesture           = Event(native.EventGesture)
	EventKey               = Event(native.EventKey)
	EventFocused           = Event(native.EventFocused)
	EventDefocused         = Event(native.EventDefocused)
	EventLeave             = Event(native.EventLeave)
	EventHitTest           = Event(native.EventHitTest)

	// Drawing events
	EventCoverCheck      = Event(native.EventCoverCheck)
	EventRefrExtDrawSize = Event(native.EventRefrExtDrawSize)
	EventDrawMainBegin   = Event(native.EventDrawMainBegin)
	EventDrawMain        = Event(native.EventDrawMain)
	EventDrawMainEnd     = Event(native.EventDrawMainEnd)
	EventDrawPostBegin   = Event(native.EventDrawPostBegin)
	EventDrawPost        = Event(native.EventDrawPost)
	EventDrawPostEnd     = Event(native.EventDrawPostEnd)
	EventDrawPartBegin   = Event(native.EventDrawPartBegin)
	EventDrawPartEnd     = Event(native.EventDrawPartEnd)

	// Special events
	EventValueChanged = Event(native.EventValueChanged)
	EventInsert       = Event(native.EventInsert)
	EventRefresh      = Event(native.EventRefresh)
	EventReady        = Event(native.EventReady)
	EventCancel       = Event(native.EventCancel)

	// Other events
	EventDelete            = Event(native.EventDelete)
	EventChildChanged      = Event(native.EventChildChanged)
	EventChildCreated      = Event(native.EventChildCreated)
	EventChildDeleted      = Event(native.EventChildDeleted)
	EventScreenUnloadStart = Event(native.EventScreenUnloadStart)
	EventScreenLoadStart   = Event(native.EventScreenLoadStart)
	EventScreenLoaded      = Event(native.EventScreenLoaded)
	EventScreenUnloaded    = Event(native.EventScreenUnloaded)
	EventSizeChanged       = Event(native.EventSizeChanged)
	EventStyleChanged      = Event(native.EventStyleChanged)
	EventLayoutChanged     = Event(native.EventLayoutChanged)
	EventGetSelfSize       = Event(native.EventGetSelfSize)
)

var eventNames = [...]string{
	EventPressed:           "Pressed",
	EventPressing:          "Pressing",
	EventPressLost:         "PressLost",
	EventShortClicked:      "ShortClicked",
	EventLongPressed:       "LongPressed",
	EventLongPressedRepeat: "LongPressedRepeat",
	EventClicked:           "Clicked",
	EventReleased:          "Released",
	EventScrollBegin:       "ScrollBegin",
	EventScrollEnd:         "ScrollEnd",
	EventScroll:            "Scroll",
	EventGesture:           "Gesture",
	EventKey:               "Key",
	EventFocused:           "Focused",
	EventDefocused:         "Defocused",
	EventLeave:             "Leave",
	EventHitTest:           "HitTest",
	EventCoverCheck:        "CoverCheck",
	EventRefrExtDrawSize:   "RefrExtDrawSize",
	EventDrawMainBegin:     "DrawMainBegin",
	EventDrawMain:          "DrawMain",
	EventDrawMainEnd:       "DrawMainEnd",
	EventDrawPostBegin:     "DrawPostBegin",
	EventDrawPost:          "DrawPost",
	EventDrawPostEnd:       "DrawPostEnd",
	EventDrawPartBegin:     "DrawPartBegin",
	EventDrawPartEnd:       "DrawPartEnd",
	EventValueChanged:      "ValueChanged",
	EventInsert:            "Insert",
	EventRefresh:           "Refresh",
	EventReady:             "Ready",
	EventCancel:            "Cancel",
	EventDelete:            "Delete",
	EventChildChanged:      "ChildChanged",
	EventChildCreated:      "ChildCreated",
	EventChildDeleted:      "ChildDeleted",
	EventScreenUnloadStart: "ScreenUnloadStart",
	EventScreenLoadStart:   "ScreenLoadStart",
	EventScreenLoaded:      "ScreenLoaded",
	EventScreenUnloaded:    "ScreenUnloaded",
	EventSizeChanged:       "SizeChanged",
	EventStyleChanged:      "StyleChanged",
	EventLayoutChanged:     "LayoutChanged",
	EventGetSelfSize:       "GetSelfSize",
}

func (e Event) String() string {
	if int(e) < len(eventNames) && eventNames[e] != "" {
		return eventNames[e]
	}
	return fmt.Sprintf("Event(%d)", uint8(e))
}

// eventFromNative decodes an engine code. The preprocess bit is ignored and
// codes outside the enumeration are rejected.
func eventFromNative(code native.EventCode) (Event, bool) {
	code &^= native.EventPreprocess
	if code <= native.EventAll || code >= native.EventLast {
		return 0, false
	}
	return Event(code), true
}

func (e Event) code() native.EventCode { return native.EventCode(e) }
