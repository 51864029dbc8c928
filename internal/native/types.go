package native

import "unsafe"

// Coord is lv_coord_t (16-bit build).
type Coord = int16

// Color is lv_color_t for LV_COLOR_DEPTH 16 (RGB565).
type Color = uint16

// Class names a widget class; the engine creates it with lv_<class>_create.
type Class string

// Point is lv_point_t.
type Point struct {
	X, Y Coord
}

// Area is lv_area_t. Both corners are inclusive.
type Area struct {
	X1, Y1, X2, Y2 Coord
}

// Width returns the number of columns covered by the area.
func (a Area) Width() int { return int(a.X2) - int(a.X1) + 1 }

// Height returns the number of rows covered by the area.
func (a Area) Height() int { return int(a.Y2) - int(a.Y1) + 1 }

// DispDrawBuf describes the scratch region the engine renders into.
type DispDrawBuf struct {
	Buf1 unsafe.Pointer
	Buf2 unsafe.Pointer
	Size uint32 // in pixels
}

// DispDrv is the Go side of lv_disp_drv_t. Backends mirror the fields they
// need into the engine's own record.
type DispDrv struct {
	HorRes   Coord
	VerRes   Coord
	DrawBuf  *DispDrawBuf
	FlushCb  FlushCallback
	UserData uintptr
}

// IndevDrv is the Go side of lv_indev_drv_t.
type IndevDrv struct {
	Type     IndevType
	ReadCb   ReadCallback
	Disp     Disp
	UserData uintptr
}

// IndevData is the Go side of lv_indev_data_t.
type IndevData struct {
	Point           Point
	Key             uint32
	BtnID           uint32
	EncDiff         int16
	State           IndevState
	ContinueReading bool
}
