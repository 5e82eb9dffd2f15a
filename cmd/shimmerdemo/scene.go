package main

import (
	"fmt"
	"time"

	"github.com/gogpu/shimmer"
	"github.com/gogpu/shimmer/skeleton"
)

const (
	rowHeight = 72
	headerH   = 48
)

var avatarColors = []shimmer.RGBA{
	shimmer.Hex("#E57373"),
	shimmer.Hex("#64B5F6"),
	shimmer.Hex("#81C784"),
	shimmer.Hex("#FFB74D"),
	shimmer.Hex("#BA68C8"),
}

// scene is a header above a list of rows that share one clock, so every
// band sweeps in step.
type scene struct {
	header *skeleton.Label
	clock  *shimmer.Animator
	rows   []*shimmer.Decorated
}

func newScene(width, height int, cfg shimmer.Config, placeholders bool) (*scene, error) {
	titleFace, err := skeleton.NewFace(20)
	if err != nil {
		return nil, err
	}
	bodyFace, err := skeleton.NewFace(14)
	if err != nil {
		return nil, err
	}

	sc := &scene{
		header: skeleton.NewLabel("Contacts", titleFace, shimmer.Black),
		clock:  shimmer.NewAnimator(cfg),
	}
	for i := 0; i*rowHeight < height-headerH; i++ {
		var region shimmer.Region
		if placeholders {
			region = skeleton.ListItem(width)
		} else {
			region = skeleton.Row(width,
				avatarColors[i%len(avatarColors)],
				skeleton.NewLabel(fmt.Sprintf("Contact %d", i+1), bodyFace, shimmer.Black),
				skeleton.NewLabel("Tap to view details", bodyFace, shimmer.DarkGray))
		}
		sc.rows = append(sc.rows, shimmer.Attach(region, true, cfg, shimmer.WithAnimator(sc.clock)))
	}
	return sc, nil
}

func (sc *scene) setLoading(loading bool) {
	for _, r := range sc.rows {
		r.SetVisible(loading)
	}
}

func (sc *scene) render(dst *shimmer.Pixmap, dt time.Duration) {
	sc.clock.Update(dt)

	dst.Clear(shimmer.White)
	sc.header.Draw(dst, 12, 12)
	for i, r := range sc.rows {
		r.Measure()
		r.Tick(dt)
		r.Paint(dst, 0, headerH+i*rowHeight)
	}
}
