// Package images prepares image resources referenced by call sheets (header
// logos mostly) for embedding into rendered output.
package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"csheet/jpegquality"
)

// Resource is prepared image ready for embedding.
type Resource struct {
	MimeType string
	Data     []byte
	Width    int
	Height   int
}

// DataURI returns resource as "data:" URI.
func (r *Resource) DataURI() string {
	return "data:" + r.MimeType + ";base64," + base64.StdEncoding.EncodeToString(r.Data)
}

var ErrNotImage = errors.New("not an image")

const defaultJPEGQuality = 85

// Loader loads local and inline image resources. Remote references are not
// fetched, Load returns nil resource for them and caller keeps the reference.
type Loader struct {
	// BaseDir is used to resolve relative paths.
	BaseDir string
	// MaxHeight scales down images taller than this, 0 keeps original size.
	MaxHeight   int
	JPEGQuality int

	log *zap.Logger
}

func NewLoader(baseDir string, maxHeight, jpegQuality int, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		BaseDir:     baseDir,
		MaxHeight:   maxHeight,
		JPEGQuality: jpegQuality,
		log:         log,
	}
}

// IsRemote reports whether reference points to network resource.
func IsRemote(ref string) bool {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return true
	}
	return false
}

// Load returns prepared resource for reference or nil for remote references.
func (l *Loader) Load(ref string) (*Resource, error) {
	ref = strings.TrimSpace(ref)
	if len(ref) == 0 {
		return nil, errors.New("empty image reference")
	}
	if IsRemote(ref) {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(ref, "data:") {
		data, err = decodeDataURI(ref)
	} else {
		path := strings.TrimPrefix(ref, "file://")
		if !filepath.IsAbs(path) && len(l.BaseDir) > 0 {
			path = filepath.Join(l.BaseDir, path)
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read image (%s): %w", shorten(ref), err)
	}
	return l.prepare(data)
}

func (l *Loader) prepare(data []byte) (*Resource, error) {
	if len(data) == 0 {
		return nil, ErrNotImage
	}

	if !filetype.IsImage(data) {
		if !looksLikeSVG(data) {
			return nil, ErrNotImage
		}
		img, err := RasterizeSVGToImage(data, 0, l.MaxHeight)
		if err != nil {
			return nil, fmt.Errorf("unable to rasterize svg: %w", err)
		}
		return l.encode(img, "png", 0)
	}

	img, imgType, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode image: %w", err)
	}

	if l.MaxHeight > 0 && img.Bounds().Dy() > l.MaxHeight {
		if l.log != nil {
			l.log.Debug("Scaling image down", zap.String("type", imgType), zap.Int("height", img.Bounds().Dy()), zap.Int("max", l.MaxHeight))
		}
		img = imaging.Resize(img, 0, l.MaxHeight, imaging.Lanczos)
		if imgType != "jpeg" {
			return l.encode(img, "png", 0)
		}
		return l.encode(img, imgType, l.jpegQuality(data))
	}

	switch imgType {
	case "png", "jpeg", "gif":
		return &Resource{
			MimeType: mime.TypeByExtension("." + imgType),
			Data:     data,
			Width:    img.Bounds().Dx(),
			Height:   img.Bounds().Dy(),
		}, nil
	}
	// browsers are not guaranteed to show bmp/tiff
	return l.encode(img, "png", 0)
}

// jpegQuality never goes above quality of the source image.
func (l *Loader) jpegQuality(data []byte) int {
	quality := l.JPEGQuality
	if quality <= 0 {
		quality = defaultJPEGQuality
	}
	log := l.log
	if log == nil {
		log = zap.NewNop()
	}
	jr, err := jpegquality.NewWithBytes(data)
	if err != nil {
		log.Debug("Unable to detect JPEG quality level", zap.Error(err))
		return quality
	}
	if q := jr.Quality(); q < quality {
		log.Debug("JPEG quality level lower than requested, keeping it", zap.Int("detected", q), zap.Int("requested", quality))
		return q
	}
	return quality
}

func (l *Loader) encode(img image.Image, imgType string, quality int) (*Resource, error) {
	buf := new(bytes.Buffer)
	var err error
	switch imgType {
	case "jpeg":
		err = imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	default:
		imgType = "png"
		err = imaging.Encode(buf, img, imaging.PNG)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to encode %s: %w", imgType, err)
	}
	return &Resource{
		MimeType: mime.TypeByExtension("." + imgType),
		Data:     buf.Bytes(),
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
	}, nil
}

func decodeDataURI(ref string) ([]byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !ok {
		return nil, errors.New("malformed data URI")
	}
	if strings.HasSuffix(meta, ";base64") {
		return base64.StdEncoding.DecodeString(payload)
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func shorten(ref string) string {
	if len(ref) > 64 {
		return ref[:61] + "..."
	}
	return ref
}
