package skeleton

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/shimmer"
)

var (
	regularOnce sync.Once
	regular     *opentype.Font
	regularErr  error
)

func regularFont() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// NewFace returns a Go Regular face at size points (72 DPI, so one point
// is one pixel).
func NewFace(size float64) (font.Face, error) {
	f, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("skeleton: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("skeleton: create face: %w", err)
	}
	return face, nil
}

// Label is a single line of text. It implements shimmer.Region, so real
// text can shimmer as well as placeholder shapes.
type Label struct {
	Color shimmer.RGBA

	text          string
	face          font.Face
	width, height int
	ascent        fixed.Int26_6
	scratch       *shimmer.Pixmap
}

// NewLabel creates a label rendered with face. The size follows the text
// advance and the face line height.
func NewLabel(text string, face font.Face, c shimmer.RGBA) *Label {
	m := face.Metrics()
	return &Label{
		Color:  c,
		text:   text,
		face:   face,
		width:  font.MeasureString(face, text).Ceil(),
		height: (m.Ascent + m.Descent).Ceil(),
		ascent: m.Ascent,
	}
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text and re-measures the width.
func (l *Label) SetText(text string) {
	l.text = text
	l.width = font.MeasureString(l.face, text).Ceil()
}

// Size implements shimmer.Region.
func (l *Label) Size() (width, height int) {
	return l.width, l.height
}

// Draw implements shimmer.Region.
func (l *Label) Draw(dst *shimmer.Pixmap, x, y int) {
	if l.width <= 0 || l.height <= 0 {
		return
	}
	if l.scratch == nil {
		l.scratch = shimmer.NewPixmap(l.width, l.height)
	} else {
		l.scratch.Resize(l.width, l.height)
	}

	d := &font.Drawer{
		Dst:  l.scratch.Image(),
		Src:  image.NewUniform(l.Color.Color()),
		Face: l.face,
		Dot:  fixed.Point26_6{Y: l.ascent},
	}
	d.DrawString(l.text)
	dst.DrawPixmap(l.scratch, x, y)
}
