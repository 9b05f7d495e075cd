package sequence

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatalf("create %s: %v", n, err)
		}
	}
}

func TestScan_filters_extensions_case_insensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "0001.PNG", "0002.Jpg", "0003.jpeg", "0004.JPEG", "notes.txt", "clip.mp4", "0005.jpg.bak")

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []string{
		dir + "/0001.PNG",
		dir + "/0002.Jpg",
		dir + "/0003.jpeg",
		dir + "/0004.JPEG",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScan_lexicographic_order(t *testing.T) {
	dir := t.TempDir()
	// Created out of order; uppercase sorts before lowercase in byte order.
	touch(t, dir, "b.png", "10.png", "A.png", "2.png", "a.png")

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []string{dir + "/10.png", dir + "/2.png", dir + "/A.png", dir + "/a.png", dir + "/b.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	again, _ := Scan(dir)
	if !reflect.DeepEqual(got, again) {
		t.Errorf("Scan not reproducible: %v vs %v", got, again)
	}
}

func TestScan_skips_directories(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "0001.jpg")
	if err := os.Mkdir(filepath.Join(dir, "masks.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(got) != 1 || got[0] != dir+"/0001.jpg" {
		t.Errorf("expected only the image file, got %v", got)
	}
}

func TestScan_trailing_slash(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "0001.jpg")

	got, err := Scan(dir + "/")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(got) != 1 || got[0] != dir+"/0001.jpg" {
		t.Errorf("unexpected paths %v", got)
	}
}

func TestScan_missing_directory(t *testing.T) {
	got, err := Scan(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrDirectoryUnavailable) {
		t.Fatalf("expected ErrDirectoryUnavailable, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestIsImageName(t *testing.T) {
	tests := map[string]bool{
		"0001.png":  true,
		"0001.PNG":  true,
		"x.Jpeg":    true,
		"jpg":       true,
		"a":         false,
		"pg":        false,
		"":          false,
		".":         false,
		"..":        false,
		"image.gif": false,
		"jpegs":     false,
	}
	for name, want := range tests {
		if got := IsImageName(name); got != want {
			t.Errorf("IsImageName(%q) = %v, want %v", name, got, want)
		}
	}
}
