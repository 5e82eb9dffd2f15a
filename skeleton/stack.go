package skeleton

import "github.com/gogpu/shimmer"

// Placed is a region at an offset inside a Stack.
type Placed struct {
	Region shimmer.Region
	X, Y   int
}

// Stack draws child regions at fixed offsets, in order. Its size grows to
// cover every child unless set explicitly.
type Stack struct {
	Width, Height int
	Children      []Placed
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Place adds r at (x, y) and grows the stack to fit it.
func (s *Stack) Place(r shimmer.Region, x, y int) *Stack {
	s.Children = append(s.Children, Placed{Region: r, X: x, Y: y})
	w, h := r.Size()
	s.Width = max(s.Width, x+w)
	s.Height = max(s.Height, y+h)
	return s
}

// Size implements shimmer.Region.
func (s *Stack) Size() (width, height int) {
	return s.Width, s.Height
}

// Draw implements shimmer.Region.
func (s *Stack) Draw(dst *shimmer.Pixmap, x, y int) {
	for _, c := range s.Children {
		c.Region.Draw(dst, x+c.X, y+c.Y)
	}
}

// Row builds a list row of real content in the ListItem layout: a colored
// avatar disc beside a title and a subtitle.
func Row(width int, avatar shimmer.RGBA, title, subtitle *Label) *Stack {
	disc := NewBlock(72, 72, Circle{CX: 36, CY: 36, R: 24})
	disc.Color = avatar

	s := NewStack().Place(disc, 0, 0)
	if title != nil {
		s.Place(title, 72, 14)
	}
	if subtitle != nil {
		s.Place(subtitle, 72, 40)
	}
	s.Width, s.Height = max(s.Width, width), max(s.Height, 72)
	return s
}
