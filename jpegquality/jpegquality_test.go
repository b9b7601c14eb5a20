package jpegquality

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

// createTestJPEG creates a JPEG image with specified quality for testing
func createTestJPEG(t *testing.T, width, height, quality int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{uint8(x * 255 / width), uint8(y * 255 / height), 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		t.Fatalf("failed to encode JPEG: %v", err)
	}
	return buf.Bytes()
}

func TestQuality(t *testing.T) {
	for _, target := range []int{30, 50, 75, 85, 95} {
		data := createTestJPEG(t, 32, 32, target)
		jr, err := New(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("New() failed for quality %d: %v", target, err)
		}
		if got := jr.Quality(); got < target-2 || got > target+2 {
			t.Errorf("Quality() = %d, want about %d", got, target)
		}
	}
}

func TestQuality_Extremes(t *testing.T) {
	jr, err := NewWithBytes(createTestJPEG(t, 16, 16, 100))
	if err != nil {
		t.Fatal(err)
	}
	if q := jr.Quality(); q < 95 {
		t.Errorf("expected very high quality (>=95), got %d", q)
	}

	jr, err = NewWithBytes(createTestJPEG(t, 16, 16, 5))
	if err != nil {
		t.Fatal(err)
	}
	if q := jr.Quality(); q > 20 {
		t.Errorf("expected low quality (<=20), got %d", q)
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrInvalidJPEG},
		{"not jpeg", []byte("definitely not a jpeg"), ErrInvalidJPEG},
		{"truncated segment", []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J'}, ErrInvalidJPEG},
		{"no tables", []byte{0xff, 0xd8, 0xff, 0xd9}, ErrNoDQT},
		{"scan before tables", []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x02, 0xff, 0xda}, ErrNoDQT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewWithBytes(tt.data); err != tt.want {
				t.Errorf("NewWithBytes() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseDQT_SixteenBit(t *testing.T) {
	segment := []byte{0x10}
	for range 64 {
		segment = append(segment, 0x00, 0x01)
	}
	jr, ok := parseDQT(segment)
	if !ok {
		t.Fatal("parseDQT() failed")
	}
	if q := jr.Quality(); q != 99 {
		t.Errorf("Quality() = %d, want 99 for all ones table", q)
	}
}
