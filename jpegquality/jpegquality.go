// Package jpegquality estimates quality level JPEG image was encoded with from
// its luminance quantization table.
package jpegquality

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

var (
	ErrInvalidJPEG = errors.New("invalid jpeg")
	ErrNoDQT       = errors.New("jpeg has no quantization tables")
)

const (
	markerSOI = 0xffd8
	markerEOI = 0xffd9
	markerSOS = 0xffda
	markerDQT = 0xffdb
)

// Annex K luminance table, order does not matter for estimation.
var stdLuminance = [64]float64{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// Reader keeps luminance table of the parsed image.
type Reader struct {
	luminance [64]uint16
}

func NewWithBytes(data []byte) (*Reader, error) {
	return New(bytes.NewReader(data))
}

// New reads image headers up to the first quantization table.
func New(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)

	marker, err := readMarker(br)
	if err != nil || marker != markerSOI {
		return nil, ErrInvalidJPEG
	}
	for {
		marker, err := readMarker(br)
		if err != nil {
			return nil, ErrInvalidJPEG
		}
		switch {
		case marker == markerSOS || marker == markerEOI:
			return nil, ErrNoDQT
		case marker >= 0xffd0 && marker <= 0xffd7, marker == 0xff01:
			// standalone markers
			continue
		}

		var length uint16
		if err := binary.Read(br, binary.BigEndian, &length); err != nil || length < 2 {
			return nil, ErrInvalidJPEG
		}
		segment := make([]byte, length-2)
		if _, err := io.ReadFull(br, segment); err != nil {
			return nil, ErrInvalidJPEG
		}
		if marker != markerDQT {
			continue
		}
		if jr, ok := parseDQT(segment); ok {
			return jr, nil
		}
	}
}

// readMarker skips fill bytes before marker.
func readMarker(br *bufio.Reader) (uint16, error) {
	b, err := br.ReadByte()
	if err != nil {
		return 0, err
	}
	if b != 0xff {
		return 0, ErrInvalidJPEG
	}
	for {
		if b, err = br.ReadByte(); err != nil {
			return 0, err
		}
		if b != 0xff {
			return 0xff00 | uint16(b), nil
		}
	}
}

// parseDQT looks for table 0 in segment which may carry several tables.
func parseDQT(segment []byte) (*Reader, bool) {
	for len(segment) > 0 {
		precision, id := segment[0]>>4, segment[0]&0x0f
		segment = segment[1:]
		size := 64
		if precision != 0 {
			size = 128
		}
		if len(segment) < size {
			return nil, false
		}
		if id == 0 {
			jr := &Reader{}
			for i := range jr.luminance {
				if precision != 0 {
					jr.luminance[i] = binary.BigEndian.Uint16(segment[i*2:])
				} else {
					jr.luminance[i] = uint16(segment[i])
				}
			}
			return jr, true
		}
		segment = segment[size:]
	}
	return nil, false
}

// Quality returns estimated quality in 1..100 range using inverse of the
// libjpeg scaling.
func (jr *Reader) Quality() int {
	var sum, std float64
	for i, q := range jr.luminance {
		sum += float64(q)
		std += stdLuminance[i]
	}
	scale := sum * 100 / std

	var quality float64
	if scale <= 100 {
		quality = (200 - scale) / 2
	} else {
		quality = 5000 / scale
	}
	return max(1, min(100, int(math.Round(quality))))
}
