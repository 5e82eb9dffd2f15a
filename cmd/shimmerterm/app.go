package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/shimmer"
	"github.com/gogpu/shimmer/skeleton"
)

const (
	itemHeight = 10 // pixels, five cells
	margin     = 2
	angleStep  = 5.0
	widthStep  = 0.05
)

var (
	background = shimmer.Hex("#1E1E2E")
	statusBar  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(205, 214, 244)).Background(tcell.NewRGBColor(49, 50, 68))
	directions = []shimmer.Direction{shimmer.LeftToRight, shimmer.TopToBottom, shimmer.RightToLeft, shimmer.BottomToTop}
)

// app owns the canvas and every decorated row. It is confined to the
// render goroutine.
type app struct {
	cfg     shimmer.Config
	clock   *shimmer.Animator
	loading bool

	canvas *shimmer.Pixmap
	rows   []*shimmer.Decorated
	cols   int
	lines  int
}

func newApp(cfg shimmer.Config) *app {
	return &app{
		cfg:     cfg,
		clock:   shimmer.NewAnimator(cfg),
		loading: true,
		canvas:  shimmer.NewPixmap(0, 0),
	}
}

// itemBlock is a compact list row for a low-resolution canvas.
func itemBlock(width int) *skeleton.Block {
	w := float32(max(width-12, 0))
	return skeleton.NewBlock(width, itemHeight,
		skeleton.Circle{CX: 4, CY: 4.5, R: 3.5},
		skeleton.Rect{X: 12, Y: 1, W: w * 0.7, H: 3},
		skeleton.Rect{X: 12, Y: 6, W: w * 0.4, H: 2},
	)
}

// resize rebuilds the layout for a terminal of cols×lines cells. The last
// line is the status bar.
func (a *app) resize(cols, lines int) {
	a.cols, a.lines = cols, lines
	a.canvas.Resize(cols, max(lines-1, 0)*2)

	a.rows = a.rows[:0]
	width := max(cols-2*margin, 0)
	for y := margin; y+itemHeight <= a.canvas.Height(); y += itemHeight + 2 {
		d := shimmer.Attach(itemBlock(width), a.loading, a.cfg, shimmer.WithAnimator(a.clock))
		a.rows = append(a.rows, d)
	}
}

func (a *app) setConfig(cfg shimmer.Config) {
	a.cfg = cfg
	for _, d := range a.rows {
		d.SetConfig(cfg)
	}
}

func (a *app) handleKey(ev *tcell.EventKey) {
	cfg := a.cfg
	switch ev.Key() {
	case tcell.KeyLeft:
		cfg.Angle -= angleStep
	case tcell.KeyRight:
		cfg.Angle += angleStep
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			a.loading = !a.loading
			for _, d := range a.rows {
				d.SetVisible(a.loading)
			}
		case 'd':
			cfg.Direction = nextDirection(cfg.Direction)
		case '+', '=':
			cfg.Intensity = min(cfg.Intensity+widthStep, 1)
		case '-':
			cfg.Intensity = max(cfg.Intensity-widthStep, 0)
		case ']':
			cfg.DropOff = min(cfg.DropOff+widthStep, 1)
		case '[':
			cfg.DropOff = max(cfg.DropOff-widthStep, 0)
		}
	}
	a.setConfig(cfg)
}

func nextDirection(d shimmer.Direction) shimmer.Direction {
	for i, v := range directions {
		if v == d {
			return directions[(i+1)%len(directions)]
		}
	}
	return directions[0]
}

// render paints every row onto the canvas.
func (a *app) render() {
	a.canvas.Clear(background)
	y := margin
	for _, d := range a.rows {
		d.Measure()
		d.Tick(0)
		d.Paint(a.canvas, margin, y)
		y += itemHeight + 2
	}
}

func (a *app) draw(screen tcell.Screen) {
	a.render()

	data := a.canvas.Data()
	w := a.canvas.Width()
	for row := 0; row*2+1 < a.canvas.Height(); row++ {
		top := data[(row*2)*w*4:]
		bottom := data[(row*2+1)*w*4:]
		for x := 0; x < w; x++ {
			i := x * 4
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top[i]), int32(top[i+1]), int32(top[i+2]))).
				Background(tcell.NewRGBColor(int32(bottom[i]), int32(bottom[i+1]), int32(bottom[i+2])))
			screen.SetContent(x, row, '▀', nil, style)
		}
	}
	a.drawStatus(screen)
}

func (a *app) status() string {
	state := "loaded"
	if a.loading {
		state = "loading"
	}
	return fmt.Sprintf(" %s · %v · angle %.0f° · intensity %.2f · drop-off %.2f · cycle %d ",
		state, a.cfg.Direction, a.cfg.Angle, a.cfg.Intensity, a.cfg.DropOff, a.clock.Cycles())
}

func (a *app) drawStatus(screen tcell.Screen) {
	if a.lines == 0 {
		return
	}
	y := a.lines - 1
	x := 0
	for _, r := range a.status() {
		if x >= a.cols {
			break
		}
		screen.SetContent(x, y, r, nil, statusBar)
		x += runewidth.RuneWidth(r)
	}
	for ; x < a.cols; x++ {
		screen.SetContent(x, y, ' ', nil, statusBar)
	}
}
