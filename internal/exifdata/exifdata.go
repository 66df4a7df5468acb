// Package exifdata reads the embedded metadata this tool cares about:
// a fixed set of capture tags used for duplicate comparison, and the
// original capture time used for date bucketing.
package exifdata

import (
	"fmt"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// comparedFields is the fixed tag set consulted when two images are
// compared for equivalence.
var comparedFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.Make,
	exif.Model,
	exif.ExposureTime,
	exif.FNumber,
	exif.ISOSpeedRatings,
}

// Tags holds the compared tag values keyed by field name. Fields absent
// from the image are absent from the map.
type Tags map[exif.FieldName]string

// Read extracts the compared tag set from the image at path.
// Images without EXIF data return an error; callers degrade to the
// byte-level comparison path.
func Read(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode exif: %w", err)
	}

	tags := make(Tags, len(comparedFields))
	for _, name := range comparedFields {
		tag, err := x.Get(name)
		if err != nil {
			continue // tag not present
		}
		tags[name] = tag.String()
	}
	return tags, nil
}

// CaptureTime returns the original capture timestamp embedded in the
// image at path. Missing or unparseable metadata returns an error; the
// temporal locator falls back to filesystem timestamps.
func CaptureTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode exif: %w", err)
	}

	dt, err := x.DateTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("capture time: %w", err)
	}
	return dt, nil
}
