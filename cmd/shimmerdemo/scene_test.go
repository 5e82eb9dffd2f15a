package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/gogpu/shimmer"
	"github.com/gogpu/shimmer/skeleton"
)

func TestSceneRows(t *testing.T) {
	sc, err := newScene(360, 480, shimmer.DefaultConfig(), false)
	if err != nil {
		t.Fatalf("newScene() error = %v", err)
	}
	if want := 6; len(sc.rows) != want {
		t.Errorf("%d rows, want %d", len(sc.rows), want)
	}
}

func TestSceneLoadingEnds(t *testing.T) {
	for _, placeholders := range []bool{false, true} {
		sc, err := newScene(200, 200, shimmer.DefaultConfig(), placeholders)
		if err != nil {
			t.Fatal(err)
		}
		step := 100 * time.Millisecond

		loading := shimmer.NewPixmap(200, 200)
		sc.render(loading, 5*step)

		sc.setLoading(false)
		done := shimmer.NewPixmap(200, 200)
		sc.render(done, step)

		// Once loaded, rows draw exactly their plain content.
		want := shimmer.NewPixmap(200, 200)
		want.Clear(shimmer.White)
		sc.header.Draw(want, 12, 12)
		for i, r := range sc.rows {
			r.Region().Draw(want, 0, headerH+i*rowHeight)
		}
		if !bytes.Equal(done.Data(), want.Data()) {
			t.Errorf("placeholders=%v: loaded frame differs from plain content", placeholders)
		}
		if bytes.Equal(loading.Data(), want.Data()) {
			t.Errorf("placeholders=%v: loading frame shows plain content", placeholders)
		}
	}
}

func TestSceneRemeasuresEachFrame(t *testing.T) {
	sc, err := newScene(200, 200, shimmer.DefaultConfig(), false)
	if err != nil {
		t.Fatal(err)
	}
	row := sc.rows[0].Region().(*skeleton.Stack)
	row.Width = 120

	sc.render(shimmer.NewPixmap(200, 200), 100*time.Millisecond)
	if w, _ := sc.rows[0].Effect().Size(); w != 120 {
		t.Errorf("effect width after resize = %v, want 120", w)
	}
}
