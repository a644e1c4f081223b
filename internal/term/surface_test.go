package term

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"conway-life/internal/core"
	"conway-life/internal/render"
)

func paintedFrame(t *testing.T, g *core.Grid, cellSize int) *render.Frame {
	t.Helper()
	f := render.NewFrame(g.W, g.H, cellSize)
	if err := f.Paint(g, render.DefaultPalette()); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	return f
}

func TestPresentDrawsSampledBlocks(t *testing.T) {
	g := core.NewGrid(4, 4)
	g.Set(0, 0, core.Alive)
	g.Set(3, 1, core.Alive) // not a sampled cell at scale 2
	g.Set(2, 2, core.Alive)

	var out bytes.Buffer
	s := NewSurface(context.Background(), &out, render.DefaultPalette(), 2)
	if err := s.Present(paintedFrame(t, g, 3)); err != nil {
		t.Fatalf("Present: %v", err)
	}

	want := "██  \n  ██\n"
	if got := out.String(); got != want {
		t.Fatalf("terminal output %q, expected %q", got, want)
	}
}

func TestPresentRedrawsInPlace(t *testing.T) {
	g := core.NewGrid(2, 2)
	var out bytes.Buffer
	s := NewSurface(context.Background(), &out, render.DefaultPalette(), 1)

	if err := s.Present(paintedFrame(t, g, 1)); err != nil {
		t.Fatalf("Present: %v", err)
	}
	first := out.Len()
	g.Set(1, 1, core.Alive)
	if err := s.Present(paintedFrame(t, g, 1)); err != nil {
		t.Fatalf("Present: %v", err)
	}

	second := out.String()[first:]
	if !strings.Contains(second, "\x1b[") {
		t.Fatalf("second frame %q does not move the cursor back", second)
	}
	if !strings.HasSuffix(second, "    \n  ██\n") {
		t.Fatalf("second frame %q does not end with the new board", second)
	}
}

func TestCancelAndClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewSurface(ctx, &bytes.Buffer{}, render.DefaultPalette(), 1)

	if !s.IsOpen() || s.CancelRequested() {
		t.Fatal("fresh surface should be open and not cancelled")
	}
	cancel()
	if !s.CancelRequested() {
		t.Fatal("cancelled context should request exit")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if s.IsOpen() {
		t.Fatal("closed surface reports open")
	}
	if err := s.Present(render.NewFrame(1, 1, 1)); err == nil {
		t.Fatal("present after close should fail")
	}
}
