// Package gl exposes the OpenGL 1.0 and 1.1 entry points as plain Go
// functions. Every function forwards through a lazily resolved
// glproc.Proc: the first call resolves the driver address, later
// calls reuse it. Init must run before any GL function, and all calls
// must happen on the thread holding the current rendering context.
package gl

import (
	"math"
	"unsafe"
)

const (
	FALSE = 0
	TRUE  = 1

	// Errors
	NO_ERROR          = 0
	INVALID_ENUM      = 0x0500
	INVALID_VALUE     = 0x0501
	INVALID_OPERATION = 0x0502
	OUT_OF_MEMORY     = 0x0505

	// Clear buffer bits
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	// Primitives
	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_LOOP      = 0x0002
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006

	// Capabilities
	CULL_FACE    = 0x0B44
	DEPTH_TEST   = 0x0B71
	STENCIL_TEST = 0x0B90
	DITHER       = 0x0BD0
	BLEND        = 0x0BE2
	SCISSOR_TEST = 0x0C11
	LINE_SMOOTH  = 0x0B20

	// Comparison functions
	NEVER    = 0x0200
	LESS     = 0x0201
	EQUAL    = 0x0202
	LEQUAL   = 0x0203
	GREATER  = 0x0204
	NOTEQUAL = 0x0205
	GEQUAL   = 0x0206
	ALWAYS   = 0x0207

	// Blend factors
	ZERO                = 0
	ONE                 = 1
	SRC_COLOR           = 0x0300
	ONE_MINUS_SRC_COLOR = 0x0301
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303
	DST_ALPHA           = 0x0304
	ONE_MINUS_DST_ALPHA = 0x0305
	DST_COLOR           = 0x0306
	ONE_MINUS_DST_COLOR = 0x0307

	// Faces and orientations
	FRONT          = 0x0404
	BACK           = 0x0405
	FRONT_AND_BACK = 0x0408
	CW             = 0x0900
	CCW            = 0x0901

	// Polygon modes
	POINT = 0x1B00
	LINE  = 0x1B01
	FILL  = 0x1B02

	// Hints
	DONT_CARE = 0x1100
	FASTEST   = 0x1101
	NICEST    = 0x1102

	// Data types
	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406
	DOUBLE         = 0x140A

	// Pixel formats
	STENCIL_INDEX   = 0x1901
	DEPTH_COMPONENT = 0x1902
	RED             = 0x1903
	GREEN           = 0x1904
	BLUE            = 0x1905
	ALPHA           = 0x1906
	RGB             = 0x1907
	RGBA            = 0x1908

	// Pixel store parameters
	UNPACK_ALIGNMENT = 0x0CF5
	PACK_ALIGNMENT   = 0x0D05

	// Strings
	VENDOR     = 0x1F00
	RENDERER   = 0x1F01
	VERSION    = 0x1F02
	EXTENSIONS = 0x1F03

	// State queries
	VIEWPORT         = 0x0BA2
	SCISSOR_BOX      = 0x0C10
	MAX_TEXTURE_SIZE = 0x0D33

	// Textures
	TEXTURE_1D         = 0x0DE0
	TEXTURE_2D         = 0x0DE1
	TEXTURE_WIDTH      = 0x1000
	TEXTURE_HEIGHT     = 0x1001
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	NEAREST            = 0x2600
	LINEAR             = 0x2601
	REPEAT             = 0x2901
)

// GoStr copies a driver-owned, null-terminated string (as returned by
// GetString) into a Go string.
func GoStr(cstr *uint8) string {
	if cstr == nil {
		return ""
	}
	var n int
	for ptr := unsafe.Pointer(cstr); *(*uint8)(ptr) != 0; n++ {
		ptr = unsafe.Pointer(uintptr(ptr) + 1)
	}
	return string(unsafe.Slice(cstr, n))
}

func f32(v float32) uintptr {
	return uintptr(math.Float32bits(v))
}

// f64 passes a GLdouble in a register word; the dispatch path targets
// 64-bit Windows only.
func f64(v float64) uintptr {
	return uintptr(math.Float64bits(v))
}

func glBool(v bool) uintptr {
	if v {
		return TRUE
	}
	return FALSE
}
