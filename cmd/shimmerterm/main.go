// Command shimmerterm shows a shimmering skeleton list in the terminal.
//
// Each cell renders two pixels with the upper half block, so a W×H terminal
// is a W×2H canvas.
//
// Keys:
//
//	space      toggle loading
//	d          next direction
//	+ / -      highlight intensity
//	[ / ]      drop-off width
//	← / →      band angle
//	q, Esc     quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/shimmer"
)

func main() {
	var (
		fps     = flag.Int("fps", 30, "target frames per second")
		logFile = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		shimmer.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	app := newApp(shimmer.DefaultConfig())
	frames, elapsed := run(app, screen, *fps)
	screen.Fini()

	fmt.Fprintf(os.Stderr, "Rendered %d frames in %v (%.2f FPS)\n",
		frames, elapsed.Round(time.Millisecond), float64(frames)/max(elapsed.Seconds(), 1e-9))
}

func run(app *app, screen tcell.Screen, fps int) (int, time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				cancel()
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok && isQuit(key) {
				cancel()
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	app.resize(screen.Size())

	var frames int
	start := time.Now()
	interval := time.Second / time.Duration(max(fps, 1))
	_ = app.clock.Run(ctx, interval, func(float64) {
		for drained := false; !drained; {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventResize:
					app.resize(screen.Size())
					screen.Sync()
				case *tcell.EventKey:
					app.handleKey(ev)
				}
			default:
				drained = true
			}
		}
		app.draw(screen)
		screen.Show()
		frames++
	})
	return frames, time.Since(start)
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q'
}
