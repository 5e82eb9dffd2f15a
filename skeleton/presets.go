package skeleton

// ListItem is an avatar circle followed by a title bar and a shorter
// subtitle bar, the classic list-row placeholder.
func ListItem(width int) *Block {
	const (
		height = 72
		pad    = 12
		avatar = 48
	)
	w := float32(width)
	textX := float32(pad + avatar + pad)
	textW := max(w-textX-pad, 0)

	return NewBlock(width, height,
		Circle{CX: pad + avatar/2, CY: height / 2, R: avatar / 2},
		Rect{X: textX, Y: 18, W: textW * 0.7, H: 14, Radius: 4},
		Rect{X: textX, Y: 42, W: textW * 0.45, H: 12, Radius: 4},
	)
}

// Card is an image area above three lines of text.
func Card(width, height int) *Block {
	const pad = 12
	w, h := float32(width), float32(height)
	inner := max(w-2*pad, 0)
	imageH := max(h*0.55, 0)
	y := imageH + pad

	return NewBlock(width, height,
		Rect{X: 0, Y: 0, W: w, H: imageH, Radius: 8},
		Rect{X: pad, Y: y, W: inner * 0.8, H: 14, Radius: 4},
		Rect{X: pad, Y: y + 24, W: inner, H: 10, Radius: 4},
		Rect{X: pad, Y: y + 42, W: inner * 0.6, H: 10, Radius: 4},
	)
}

// Paragraph is lines of text bars; the last line is shorter.
func Paragraph(width, lines int) *Block {
	const (
		lineH   = 12
		spacing = 8
	)
	lines = max(lines, 0)
	b := NewBlock(width, max(lines*(lineH+spacing)-spacing, 0))
	for i := 0; i < lines; i++ {
		w := float32(width)
		if i == lines-1 && lines > 1 {
			w *= 0.6
		}
		b.Add(Rect{Y: float32(i * (lineH + spacing)), W: w, H: lineH, Radius: lineH / 2})
	}
	return b
}
