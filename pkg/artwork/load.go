// Package artwork renders artwork previews for the event modal. Images are
// decoded and fitted with imaging, then drawn either as Unicode half blocks
// (composable with the rest of a frame) or as inline terminal images via
// go-termimg.
package artwork

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrRemote is returned for http(s) image references; artwork is only read
// from the local filesystem.
var ErrRemote = errors.New("artwork: remote images are not fetched")

// ErrNoImage is returned when an event has no image reference.
var ErrNoImage = errors.New("artwork: no image")

// Resolve turns an event's image reference into a local path. Relative
// paths are taken relative to baseDir, the directory of the dataset file.
func Resolve(ref, baseDir string) (string, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return "", ErrNoImage
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return "", ErrRemote
	case strings.HasPrefix(ref, "file://"):
		ref = strings.TrimPrefix(ref, "file://")
	}
	if !filepath.IsAbs(ref) && baseDir != "" {
		ref = filepath.Join(baseDir, ref)
	}
	return filepath.Clean(ref), nil
}

// Load decodes an image file, applying EXIF orientation.
func Load(path string) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("artwork: %w", err)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("artwork: decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
