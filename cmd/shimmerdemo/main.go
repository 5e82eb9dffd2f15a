// Command shimmerdemo renders a shimmering loading list to PNG frames or an
// animated GIF.
//
// The scene mirrors a typical refresh screen: rows of avatar and text that
// shimmer while loading and show plain content once the load completes.
//
//	shimmerdemo -output shimmer.gif -frames 90 -load 1s
//	shimmerdemo -output frame.png -frames 1 -direction top-to-bottom
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/shimmer"
)

func main() {
	var (
		width     = flag.Int("width", 360, "image width")
		height    = flag.Int("height", 480, "image height")
		output    = flag.String("output", "shimmer.gif", "output file (.gif for an animation, .png for numbered frames)")
		frames    = flag.Int("frames", 60, "number of frames")
		fps       = flag.Int("fps", 30, "frames per second")
		load      = flag.Duration("load", 0, "loading time before content is shown (0 keeps loading)")
		placehold = flag.Bool("skeleton", false, "shimmer placeholder shapes instead of real rows")
		direction = flag.String("direction", "left-to-right", "sweep direction")
		angle     = flag.Float64("angle", shimmer.DefaultAngle, "band tilt in degrees")
		intensity = flag.Float64("intensity", shimmer.DefaultIntensity, "solid highlight width")
		dropOff   = flag.Float64("dropoff", shimmer.DefaultDropOff, "fade width on each side of the highlight")
		duration  = flag.Duration("duration", shimmer.DefaultDuration, "sweep duration")
		delay     = flag.Duration("delay", shimmer.DefaultDelay, "pause before each sweep")
		highlight = flag.String("highlight", "", "highlight color as #RRGGBB (default light gray)")
		content   = flag.String("content", "", "content color as #RRGGBB (default light gray)")
		verbose   = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	shimmer.SetLogger(logger)

	dir, err := shimmer.ParseDirection(*direction)
	if err != nil {
		log.Fatalf("Invalid -direction: %v", err)
	}

	opts := []shimmer.ConfigOption{
		shimmer.WithDirection(dir),
		shimmer.WithAngle(*angle),
		shimmer.WithIntensity(*intensity),
		shimmer.WithDropOff(*dropOff),
		shimmer.WithDuration(*duration),
		shimmer.WithDelay(*delay),
	}
	if *highlight != "" {
		opts = append(opts, shimmer.WithHighlightColor(shimmer.Hex(*highlight)))
	}
	if *content != "" {
		opts = append(opts, shimmer.WithContentColor(shimmer.Hex(*content)))
	}
	cfg := shimmer.NewConfig(opts...)

	sc, err := newScene(*width, *height, cfg, *placehold)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	step := time.Second / time.Duration(max(*fps, 1))
	canvas := shimmer.NewPixmap(*width, *height)
	rendered := make([]*shimmer.Pixmap, 0, max(*frames, 0))
	for i := 0; i < *frames; i++ {
		now := time.Duration(i) * step
		if *load > 0 && now >= *load {
			sc.setLoading(false)
		}
		sc.render(canvas, step)
		rendered = append(rendered, canvas.Clone())
	}

	if strings.EqualFold(filepath.Ext(*output), ".gif") {
		err = saveGIF(*output, rendered, step)
	} else {
		err = savePNGs(*output, rendered)
	}
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	logger.Info("demo saved",
		slog.String("output", *output),
		slog.Int("frames", len(rendered)),
		slog.String("config", cfg.String()))
}

// saveGIF writes frames as a looping animation on the Plan 9 palette.
func saveGIF(path string, frames []*shimmer.Pixmap, step time.Duration) error {
	anim := &gif.GIF{}
	delay := int(step / (10 * time.Millisecond))
	for _, f := range frames {
		img := f.Image()
		p := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, max(delay, 1))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := gif.EncodeAll(file, anim); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}

// savePNGs writes one PNG per frame. With a single frame the path is used
// as is; otherwise a frame number is inserted before the extension.
func savePNGs(path string, frames []*shimmer.Pixmap) error {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i, f := range frames {
		name := path
		if len(frames) > 1 {
			name = fmt.Sprintf("%s-%03d%s", base, i, ext)
		}
		if err := f.SavePNG(name); err != nil {
			return err
		}
	}
	return nil
}
