package fitplot

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		style   string
		scatter bool
		col     color.Color
	}{
		{"bo", true, color.RGBA{B: 255, A: 255}},
		{"r-", false, color.RGBA{R: 220, A: 255}},
		{"k.", true, color.Black},
		{"", false, color.Black},
		{"g", false, color.RGBA{G: 160, A: 255}},
	}

	for _, tt := range tests {
		col, scatter := parseStyle(tt.style)
		if scatter != tt.scatter {
			t.Fatalf("style %q: scatter got %v want %v", tt.style, scatter, tt.scatter)
		}
		if col != tt.col {
			t.Fatalf("style %q: color got %v want %v", tt.style, col, tt.col)
		}
	}
}

func TestPlotLengthMismatchDeferred(t *testing.T) {
	p := New("t", "x", "y")

	p.Plot([]float64{1, 2}, []float64{1}, "bo", "data")
	if p.Err() == nil {
		t.Fatal("expected deferred error")
	}

	if err := p.Save(filepath.Join(t.TempDir(), "t.png")); err == nil {
		t.Fatal("Save must surface the deferred error")
	}
}

func TestSaveWritesPNG(t *testing.T) {
	p := New("t", "x", "y")
	p.Plot([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9}, "bo", "data")
	p.Plot([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9}, "r-", "fit")
	p.Legend(true)

	name := filepath.Join(t.TempDir(), "out.png")
	if err := p.Save(name); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fi, err := os.Stat(name)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatal("empty plot file")
	}
}
