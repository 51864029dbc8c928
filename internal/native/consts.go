package native

// Values below follow the LVGL v8.3 headers. They are part of the engine ABI
// and must change in lockstep with the library lvgo is built against.

// ============================================================================
// Events (lv_event_code_t)
// ============================================================================

type EventCode uint32

const (
	EventAll EventCode = iota

	// Input device events
	EventPressed
	EventPressing
	EventPressLost
	EventShortClicked
	EventLongPressed
	EventLongPressedRepeat
	EventClicked
	EventReleased
	EventScrollBegin
	EventScrollEnd
	EventScroll
	EventGesture
	EventKey
	EventFocused
	EventDefocused
	EventLeave
	EventHitTest

	// Drawing events
	EventCoverCheck
	EventRefrExtDrawSize
	EventDrawMainBegin
	EventDrawMain
	EventDrawMainEnd
	EventDrawPostBegin
	EventDrawPost
	EventDrawPostEnd
	EventDrawPartBegin
	EventDrawPartEnd

	// Special events
	EventValueChanged
	EventInsert
	EventRefresh
	EventReady
	EventCancel

	// Other events
	EventDelete
	EventChildChanged
	EventChildCreated
	EventChildDeleted
	EventScreenUnloadStart
	EventScreenLoadStart
	EventScreenLoaded
	EventScreenUnloaded
	EventSizeChanged
	EventStyleChanged
	EventLayoutChanged
	EventGetSelfSize

	EventLast

	EventPreprocess EventCode = 0x80
)

// ============================================================================
// Object flags (lv_obj_flag_t)
// ============================================================================

type ObjFlag uint32

const (
	FlagHidden          ObjFlag = 1 << 0
	FlagClickable       ObjFlag = 1 << 1
	FlagClickFocusable  ObjFlag = 1 << 2
	FlagCheckable       ObjFlag = 1 << 3
	FlagScrollable      ObjFlag = 1 << 4
	FlagScrollElastic   ObjFlag = 1 << 5
	FlagScrollMomentum  ObjFlag = 1 << 6
	FlagScrollOne       ObjFlag = 1 << 7
	FlagScrollChainHor  ObjFlag = 1 << 8
	FlagScrollChainVer  ObjFlag = 1 << 9
	FlagScrollChain     ObjFlag = FlagScrollChainHor | FlagScrollChainVer
	FlagScrollOnFocus   ObjFlag = 1 << 10
	FlagScrollWithArrow ObjFlag = 1 << 11
	FlagSnappable       ObjFlag = 1 << 12
	FlagPressLock       ObjFlag = 1 << 13
	FlagEventBubble     ObjFlag = 1 << 14
	FlagGestureBubble   ObjFlag = 1 << 15
	FlagAdvHittest      ObjFlag = 1 << 16
	FlagIgnoreLayout    ObjFlag = 1 << 17
	FlagFloating        ObjFlag = 1 << 18
	FlagOverflowVisible ObjFlag = 1 << 19
	FlagLayout1         ObjFlag = 1 << 23
	FlagLayout2         ObjFlag = 1 << 24
	FlagWidget1         ObjFlag = 1 << 25
	FlagWidget2         ObjFlag = 1 << 26
	FlagUser1           ObjFlag = 1 << 27
	FlagUser2           ObjFlag = 1 << 28
	FlagUser3           ObjFlag = 1 << 29
	FlagUser4           ObjFlag = 1 << 30
)

// ============================================================================
// States (lv_state_t)
// ============================================================================

type State uint16

const (
	StateDefault  State = 0x0000
	StateChecked  State = 0x0001
	StateFocused  State = 0x0002
	StateFocusKey State = 0x0004
	StateEdited   State = 0x0008
	StateHovered  State = 0x0010
	StatePressed  State = 0x0020
	StateScrolled State = 0x0040
	StateDisabled State = 0x0080
	StateUser1    State = 0x1000
	StateUser2    State = 0x2000
	StateUser3    State = 0x4000
	StateUser4    State = 0x8000
	StateAny      State = 0xFFFF
)

// ============================================================================
// Parts and style selectors
// ============================================================================

type Part uint32

const (
	PartMain        Part = 0x000000
	PartScrollbar   Part = 0x010000
	PartIndicator   Part = 0x020000
	PartKnob        Part = 0x030000
	PartSelected    Part = 0x040000
	PartItems       Part = 0x050000
	PartTicks       Part = 0x060000
	PartCursor      Part = 0x070000
	PartCustomFirst Part = 0x080000
	PartAny         Part = 0x0F0000
)

// StyleSelector is a part OR-ed with a state.
type StyleSelector uint32

// ============================================================================
// Alignment (lv_align_t, lv_grid_align_t)
// ============================================================================

type Align uint8

const (
	AlignDefault Align = iota
	AlignTopLeft
	AlignTopMid
	AlignTopRight
	AlignBottomLeft
	AlignBottomMid
	AlignBottomRight
	AlignLeftMid
	AlignRightMid
	AlignCenter
	AlignOutTopLeft
	AlignOutTopMid
	AlignOutTopRight
	AlignOutBottomLeft
	AlignOutBottomMid
	AlignOutBottomRight
	AlignOutLeftTop
	AlignOutLeftMid
	AlignOutLeftBottom
	AlignOutRightTop
	AlignOutRightMid
	AlignOutRightBottom
)

type GridAlign uint8

const (
	GridAlignStart GridAlign = iota
	GridAlignCenter
	GridAlignEnd
	GridAlignStretch
	GridAlignSpaceEvenly
	GridAlignSpaceAround
	GridAlignSpaceBetween
)

// Grid template values for 16-bit coordinates.
const (
	CoordMax         Coord = (1 << 13) - 1
	GridContent      Coord = CoordMax - 101
	GridTemplateLast Coord = CoordMax
	gridFRBase       Coord = CoordMax - 100
)

// GridFR returns the template value for x free units.
func GridFR(x uint8) Coord { return gridFRBase + Coord(x) }

// IsGridFR reports whether v is a free-unit track and returns its weight.
func IsGridFR(v Coord) (int, bool) {
	if v > gridFRBase && v < GridTemplateLast {
		return int(v - gridFRBase), true
	}
	return 0, false
}

// ============================================================================
// Style properties (lv_style_prop_t)
// ============================================================================

type StyleProp uint16

const (
	StyleWidth       StyleProp = 1
	StyleHeight      StyleProp = 4
	StyleX           StyleProp = 7
	StyleY           StyleProp = 8
	StylePadTop      StyleProp = 18
	StylePadBottom   StyleProp = 19
	StylePadLeft     StyleProp = 20
	StylePadRight    StyleProp = 21
	StylePadRow      StyleProp = 22
	StylePadColumn   StyleProp = 23
	StyleBgColor     StyleProp = 28
	StyleBgOpa       StyleProp = 29
	StyleBorderColor StyleProp = 48
	StyleBorderOpa   StyleProp = 49
	StyleBorderWidth StyleProp = 50
	StyleRadius      StyleProp = 56
	StyleTextColor   StyleProp = 88
)

// ============================================================================
// Input devices (lv_indev_type_t, lv_indev_state_t)
// ============================================================================

type IndevType uint8

const (
	IndevTypeNone IndevType = iota
	IndevTypePointer
	IndevTypeKeypad
	IndevTypeButton
	IndevTypeEncoder
)

type IndevState uint8

const (
	IndevStateReleased IndevState = iota
	IndevStatePressed
)
