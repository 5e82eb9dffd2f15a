// Package blend implements the Porter-Duff operators the shimmer compositor
// needs.
//
// All blend operations work with premultiplied alpha values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a Porter-Duff compositing operation.
type Mode uint8

const (
	ModeSourceOver Mode = iota // Result: S + D*(1-Sa)
	ModeSourceIn               // Result: S*Da
)

// String returns the operator name.
func (m Mode) String() string {
	switch m {
	case ModeSourceOver:
		return "src-over"
	case ModeSourceIn:
		return "src-in"
	default:
		return "unknown"
	}
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for the given mode.
// Returns source-over for unknown modes.
func GetFunc(mode Mode) Func {
	if mode == ModeSourceIn {
		return blendSourceIn
	}
	return blendSourceOver
}

// blendSourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendSourceIn keeps the source only where the destination has coverage.
// Formula: S * Da
func blendSourceIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// Span composites the premultiplied RGBA row src onto dst in place.
// Both slices hold 4 bytes per pixel; the shorter one bounds the work.
func Span(mode Mode, dst, src []byte) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	n -= n % 4

	if mode == ModeSourceOver {
		for i := 0; i < n; i += 4 {
			sa := src[i+3]
			switch sa {
			case 0:
				continue
			case 255:
				copy(dst[i:i+4], src[i:i+4])
				continue
			}
			dst[i], dst[i+1], dst[i+2], dst[i+3] = blendSourceOver(
				src[i], src[i+1], src[i+2], sa, dst[i], dst[i+1], dst[i+2], dst[i+3])
		}
		return
	}

	fn := GetFunc(mode)
	for i := 0; i < n; i += 4 {
		dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(
			src[i], src[i+1], src[i+2], src[i+3], dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}
