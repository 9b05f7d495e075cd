package imageio

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoader_LoadImage_jpeg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0001.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := NewLoader().LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got.Bounds().Size() != (image.Point{X: 8, Y: 6}) {
		t.Errorf("unexpected size %v", got.Bounds().Size())
	}
}

func TestLoader_LoadImage_missing(t *testing.T) {
	_, err := NewLoader().LoadImage(filepath.Join(t.TempDir(), "absent.png"))
	if err == nil {
		t.Fatal("expected error for missing frame")
	}
}

func TestLoader_LoadImage_corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0001.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader().LoadImage(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoader_LoadMask_gray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0001.png")
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.White)
	writePNG(t, path, src)

	m, err := NewLoader().LoadMask(path, image.Point{})
	if err != nil {
		t.Fatalf("LoadMask: %v", err)
	}
	if m.GrayAt(1, 1).Y != 255 || m.GrayAt(0, 0).Y != 0 {
		t.Errorf("unexpected mask pixels: (1,1)=%v (0,0)=%v", m.GrayAt(1, 1), m.GrayAt(0, 0))
	}
}

func TestLoader_LoadMask_resizes_to_frame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0001.png")
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	writePNG(t, path, src)

	m, err := NewLoader().LoadMask(path, image.Point{X: 8, Y: 4})
	if err != nil {
		t.Fatalf("LoadMask: %v", err)
	}
	if m.Bounds().Size() != (image.Point{X: 8, Y: 4}) {
		t.Fatalf("expected mask resized to 8x4, got %v", m.Bounds().Size())
	}
	if m.GrayAt(7, 3).Y != 255 {
		t.Errorf("nearest-neighbour resize should keep mask values, got %v", m.GrayAt(7, 3))
	}
}

func TestLoader_LoadMask_missing(t *testing.T) {
	if _, err := NewLoader().LoadMask(filepath.Join(t.TempDir(), "masks", "0001.png"), image.Point{}); err == nil {
		t.Fatal("expected error for missing mask")
	}
}
