// Package sink persists rendered floor plans as uniquely named image
// files in a flat output directory.
//
// Encoding and writing are split so callers can cache encoded bytes:
// rendering is deterministic, so identical requests can reuse pixels
// while every call still produces its own artifact file.
//
// Writes are atomic (temp file plus rename); a crashed or aborted write
// never leaves a partial file under a final artifact name.
package sink

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/vastuplan/vastuplan/pkg/errors"
)

// Format is an artifact encoding.
type Format string

// Supported artifact formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// jpegQuality is the encoder quality for JPEG artifacts.
const jpegQuality = 92

// ParseFormat converts a string into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case string(FormatPNG):
		return FormatPNG, nil
	case string(FormatJPEG), "jpg":
		return FormatJPEG, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown artifact format: %q (must be png or jpeg)", s)
}

// Ext returns the filename extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// Encode serializes the image. PNG output is stamped with a 300 dpi
// physical-resolution chunk for print use.
func Encode(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatPNG:
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderEncode, err, "encoding png")
		}
		stamped, err := stampDPI(buf.Bytes(), printDPI)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderEncode, err, "stamping png resolution")
		}
		return stamped, nil
	case FormatJPEG:
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderEncode, err, "encoding jpeg")
		}
		return buf.Bytes(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown artifact format: %q", format)
}

// Write stores encoded artifact bytes under a fresh opaque filename in
// dir and returns that filename. The directory is created if missing.
// The data lands under a temporary name first and is renamed into
// place, so readers never observe a partial artifact.
func Write(dir string, data []byte, format Format) (string, error) {
	if err := errors.ValidateOutputDir(dir); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeRenderWrite, err, "creating output directory %s", dir)
	}

	filename := uuid.NewString() + "." + format.Ext()

	tmp, err := os.CreateTemp(dir, ".plan-*")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRenderWrite, err, "creating temp file in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(errors.ErrCodeRenderWrite, err, "writing artifact data")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(errors.ErrCodeRenderWrite, err, "closing artifact file")
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(errors.ErrCodeRenderWrite, err, "setting artifact permissions")
	}
	if err := os.Rename(tmpName, filepath.Join(dir, filename)); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(errors.ErrCodeRenderWrite, err, "publishing artifact %s", filename)
	}

	return filename, nil
}

// Sweep removes artifacts in dir last modified before cutoff and
// reports how many were deleted. Dotfiles (in-flight temp files) and
// subdirectories are left alone. A missing directory sweeps nothing.
func Sweep(dir string, cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrap(errors.ErrCodeStoreRead, err, "listing %s", dir)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || entry.Name()[0] == '.' {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
