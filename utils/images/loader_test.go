package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"csheet/jpegquality"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{uint8(x * 255 / w), uint8(y * 255 / h), 64, 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h, quality int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(w, h), &jpeg.Options{Quality: quality}); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"https://cdn.example.com/logo.png", true},
		{" HTTP://example.com/a.png", true},
		{"logo.png", false},
		{"file:///tmp/logo.png", false},
		{"data:image/png;base64,AAAA", false},
	}
	for _, tt := range tests {
		if got := IsRemote(tt.ref); got != tt.want {
			t.Errorf("IsRemote(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	pngData := encodePNG(t, 30, 20)
	if err := os.WriteFile(filepath.Join(dir, "logo.png"), pngData, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader(dir, 0, 85, zaptest.NewLogger(t))

	t.Run("relative path", func(t *testing.T) {
		res, err := l.Load("logo.png")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if res.MimeType != "image/png" || res.Width != 30 || res.Height != 20 {
			t.Errorf("Load() = %s %dx%d", res.MimeType, res.Width, res.Height)
		}
		if !bytes.Equal(res.Data, pngData) {
			t.Error("image without scaling must be kept as is")
		}
		if !strings.HasPrefix(res.DataURI(), "data:image/png;base64,") {
			t.Errorf("DataURI() = %.40s", res.DataURI())
		}
	})

	t.Run("data uri", func(t *testing.T) {
		res, err := l.Load("data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if res.Width != 30 {
			t.Errorf("Width = %d, want 30", res.Width)
		}
	})

	t.Run("inline svg", func(t *testing.T) {
		svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 20"><rect width="40" height="20"/></svg>`
		res, err := l.Load("data:image/svg+xml," + url.PathEscape(svg))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if res.MimeType != "image/png" || res.Width != 40 || res.Height != 20 {
			t.Errorf("Load() = %s %dx%d", res.MimeType, res.Width, res.Height)
		}
	})

	t.Run("remote is not fetched", func(t *testing.T) {
		res, err := l.Load("https://cdn.example.com/logo.png")
		if res != nil || err != nil {
			t.Errorf("Load() = %v, %v, want nil, nil", res, err)
		}
	})

	t.Run("errors", func(t *testing.T) {
		if _, err := l.Load("  "); err == nil {
			t.Error("expected error for empty reference")
		}
		if _, err := l.Load("missing.png"); err == nil {
			t.Error("expected error for missing file")
		}
		if _, err := l.Load("notes.txt"); !errors.Is(err, ErrNotImage) {
			t.Errorf("Load(notes.txt) error = %v, want ErrNotImage", err)
		}
		if _, err := l.Load("data:image/png;base64"); err == nil {
			t.Error("expected error for malformed data URI")
		}
	})
}

func TestLoader_Scaling(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tall.png"), encodePNG(t, 50, 100), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), encodeJPEG(t, 64, 64, 50), 0644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader(dir, 32, 90, zaptest.NewLogger(t))

	res, err := l.Load("tall.png")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Height != 32 || res.Width != 16 {
		t.Errorf("scaled to %dx%d, want 16x32", res.Width, res.Height)
	}

	res, err = l.Load("photo.jpg")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.MimeType != "image/jpeg" || res.Height != 32 {
		t.Fatalf("Load() = %s %dx%d", res.MimeType, res.Width, res.Height)
	}
	jr, err := jpegquality.NewWithBytes(res.Data)
	if err != nil {
		t.Fatal(err)
	}
	if q := jr.Quality(); q > 52 {
		t.Errorf("re-encoded with quality %d, source had 50", q)
	}
}
