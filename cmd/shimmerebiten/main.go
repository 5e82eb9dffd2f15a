// Command shimmerebiten shows a shimmering loading list in a window.
//
// Keys:
//
//	Space        toggle loading
//	D            next direction
//	Up / Down    highlight intensity
//	Left / Right drop-off width
//	A / Z        band angle
//	H            swap highlight color
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/shimmer"
	"github.com/gogpu/shimmer/skeleton"
)

const (
	screenWidth  = 360
	screenHeight = 540
	rowHeight    = 72
	topInset     = 24
)

var (
	highlights = []shimmer.RGBA{shimmer.LightGray.WithAlpha(0.9), shimmer.Hex("#FFF8E1").WithAlpha(0.9)}
	directions = []shimmer.Direction{shimmer.LeftToRight, shimmer.TopToBottom, shimmer.RightToLeft, shimmer.BottomToTop}
)

// Game hosts one shared clock and a column of decorated rows.
type Game struct {
	cfg       shimmer.Config
	clock     *shimmer.Animator
	rows      []*shimmer.Decorated
	loading   bool
	highlight int

	canvas *shimmer.Pixmap
	frame  *ebiten.Image
}

// NewGame builds the list. With placeholders set, rows are skeleton shapes
// instead of real content.
func NewGame(placeholders bool) (*Game, error) {
	cfg := shimmer.DefaultConfig()
	g := &Game{
		cfg:     cfg,
		clock:   shimmer.NewAnimator(cfg),
		loading: true,
		canvas:  shimmer.NewPixmap(screenWidth, screenHeight),
	}

	face, err := skeleton.NewFace(14)
	if err != nil {
		return nil, err
	}
	for i := 0; topInset+(i+1)*rowHeight <= screenHeight; i++ {
		var region shimmer.Region
		if placeholders {
			region = skeleton.ListItem(screenWidth)
		} else {
			region = skeleton.Row(screenWidth, shimmer.Hex("#90A4AE"),
				skeleton.NewLabel(fmt.Sprintf("Item %d", i+1), face, shimmer.Black),
				skeleton.NewLabel("Pull to refresh", face, shimmer.DarkGray))
		}
		g.rows = append(g.rows, shimmer.Attach(region, true, cfg, shimmer.WithAnimator(g.clock)))
	}
	return g, nil
}

func (g *Game) Update() error {
	cfg := g.cfg
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.loading = !g.loading
		for _, d := range g.rows {
			d.SetVisible(g.loading)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		cfg.Direction = nextDirection(cfg.Direction)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		cfg.Intensity = min(cfg.Intensity+0.05, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		cfg.Intensity = max(cfg.Intensity-0.05, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		cfg.DropOff = min(cfg.DropOff+0.05, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		cfg.DropOff = max(cfg.DropOff-0.05, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		cfg.Angle += 5
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		cfg.Angle -= 5
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.highlight = (g.highlight + 1) % len(highlights)
		cfg.HighlightColor = highlights[g.highlight]
	}
	if cfg != g.cfg {
		g.cfg = cfg
		for _, d := range g.rows {
			d.SetConfig(cfg)
		}
	}

	g.clock.Update(time.Second / time.Duration(ebiten.TPS()))
	for _, d := range g.rows {
		d.Measure()
		d.Tick(0)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Clear(shimmer.White)
	for i, d := range g.rows {
		d.Paint(g.canvas, 0, topInset+i*rowHeight)
	}

	if g.frame == nil {
		g.frame = ebiten.NewImage(screenWidth, screenHeight)
	}
	// Both sides are premultiplied RGBA8.
	g.frame.WritePixels(g.canvas.Data())
	screen.DrawImage(g.frame, nil)

	state := "loaded"
	if g.loading {
		state = "loading"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s %v angle %.0f i=%.2f d=%.2f TPS %.0f",
		state, g.cfg.Direction, g.cfg.Angle, g.cfg.Intensity, g.cfg.DropOff, ebiten.ActualTPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func nextDirection(d shimmer.Direction) shimmer.Direction {
	for i, v := range directions {
		if v == d {
			return directions[(i+1)%len(directions)]
		}
	}
	return directions[0]
}

func main() {
	placeholders := flag.Bool("skeleton", false, "shimmer placeholder shapes instead of real rows")
	flag.Parse()

	game, err := NewGame(*placeholders)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("shimmer")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
