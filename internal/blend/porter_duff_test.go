package blend

import "testing"

// TestMulDiv255 tests the multiply and divide by 255 helper function.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * zero", 255, 0, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"128 * 255", 128, 255, 128},
		{"1 * 1", 1, 1, 0},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mulDiv255(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMulDiv255Exhaustive(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := byte((a*b + 127) / 255)
			if got := mulDiv255(byte(a), byte(b)); got != want {
				t.Fatalf("mulDiv255(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestPorterDuff(t *testing.T) {
	// Premultiplied half-transparent white source over various destinations.
	type px struct{ r, g, b, a byte }
	tests := []struct {
		name string
		mode Mode
		src  px
		dst  px
		want px
	}{
		{"src-over opaque dst", ModeSourceOver, px{128, 128, 128, 128}, px{255, 0, 0, 255}, px{255, 128, 128, 255}},
		{"src-over empty dst", ModeSourceOver, px{128, 128, 128, 128}, px{0, 0, 0, 0}, px{128, 128, 128, 128}},
		{"src-in opaque dst", ModeSourceIn, px{128, 128, 128, 128}, px{255, 0, 0, 255}, px{128, 128, 128, 128}},
		{"src-in empty dst", ModeSourceIn, px{128, 128, 128, 128}, px{0, 0, 0, 0}, px{0, 0, 0, 0}},
		{"src-in half dst", ModeSourceIn, px{255, 255, 255, 255}, px{0, 0, 128, 128}, px{128, 128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := GetFunc(tt.mode)(tt.src.r, tt.src.g, tt.src.b, tt.src.a,
				tt.dst.r, tt.dst.g, tt.dst.b, tt.dst.a)
			got := px{r, g, b, a}
			if got != tt.want {
				t.Errorf("%v: got %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestSpanSourceOverMatchesFunc(t *testing.T) {
	src := []byte{
		0, 0, 0, 0,
		255, 255, 255, 255,
		64, 32, 16, 128,
	}
	dst := []byte{
		10, 20, 30, 255,
		10, 20, 30, 255,
		10, 20, 30, 255,
	}
	want := make([]byte, len(dst))
	copy(want, dst)
	for i := 0; i < len(src); i += 4 {
		want[i], want[i+1], want[i+2], want[i+3] = blendSourceOver(
			src[i], src[i+1], src[i+2], src[i+3], want[i], want[i+1], want[i+2], want[i+3])
	}

	Span(ModeSourceOver, dst, src)
	for i := range dst {
		if dst[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestSpanShortSource(t *testing.T) {
	dst := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	Span(ModeSourceIn, dst, []byte{0, 0, 0, 0})
	if dst[0] != 0 || dst[3] != 0 {
		t.Errorf("first pixel not cleared: %v", dst[:4])
	}
	if dst[4] != 5 || dst[7] != 8 {
		t.Errorf("second pixel touched: %v", dst[4:])
	}
}

func TestUnknownModeIsSourceOver(t *testing.T) {
	r, g, b, a := GetFunc(Mode(200))(128, 128, 128, 128, 255, 0, 0, 255)
	if r != 255 || g != 128 || b != 128 || a != 255 {
		t.Errorf("Mode(200) blend = (%d, %d, %d, %d), want source-over (255, 128, 128, 255)", r, g, b, a)
	}
}

func TestModeString(t *testing.T) {
	if ModeSourceIn.String() != "src-in" {
		t.Errorf("ModeSourceIn.String() = %q", ModeSourceIn.String())
	}
	if Mode(200).String() != "unknown" {
		t.Errorf("Mode(200).String() = %q", Mode(200).String())
	}
}
