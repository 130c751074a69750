package output

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/klauspost/compress/gzip"
	"github.com/mrjoshuak/go-openexr/exr"
)

// Format identifies an image file format
type Format string

const (
	FormatPNG     Format = "png"
	FormatJPEG    Format = "jpeg"
	FormatPPM     Format = "ppm"
	FormatPPMGzip Format = "ppm.gz"
	FormatEXR     Format = "exr"
)

// DefaultJPEGQuality is used by Write for JPEG output
const DefaultJPEGQuality = 95

var (
	ErrUnknownFormat = errors.New("output: unknown image format")
	ErrNotSeekable   = errors.New("output: exr output requires a seekable writer")
)

// ParseFormat maps a format name such as "png" or "jpg" to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "ppm":
		return FormatPPM, nil
	case "ppm.gz", "ppmgz":
		return FormatPPMGzip, nil
	case "exr":
		return FormatEXR, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	base := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(base, ".ppm.gz") {
		return FormatPPMGzip, nil
	}

	ext := filepath.Ext(base)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// WritePNG encodes the buffer as an 8-bit PNG
func WritePNG(w io.Writer, buffer *renderer.PixelBuffer) error {
	return png.Encode(w, buffer.ToRGBA())
}

// WriteJPEG encodes the buffer as a JPEG with the given quality (1-100)
func WriteJPEG(w io.Writer, buffer *renderer.PixelBuffer, quality int) error {
	return jpeg.Encode(w, buffer.ToRGBA(), &jpeg.Options{Quality: quality})
}

// WritePPM encodes the buffer as a binary (P6) portable pixmap
func WritePPM(w io.Writer, buffer *renderer.PixelBuffer) error {
	img := buffer.ToRGBA()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", buffer.Width, buffer.Height); err != nil {
		return err
	}
	for y := 0; y < buffer.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*buffer.Width]
		for x := 0; x < len(row); x += 4 {
			if _, err := bw.Write(row[x : x+3]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WritePPMGzip writes a gzip compressed binary PPM
func WritePPMGzip(w io.Writer, buffer *renderer.PixelBuffer) error {
	zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return err
	}
	if err := WritePPM(zw, buffer); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// WriteEXR encodes the buffer as a half-float OpenEXR image. Pixels are written in
// linear space, the buffer's gamma encoding is undone first.
func WriteEXR(w io.WriteSeeker, buffer *renderer.PixelBuffer) error {
	return exr.Encode(w, toEXR(buffer))
}

func toEXR(buffer *renderer.PixelBuffer) *exr.RGBAImage {
	img := exr.NewRGBAImage(image.Rect(0, 0, buffer.Width, buffer.Height))
	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			c := buffer.Linear(x, y)
			img.SetRGBA(x, y, float32(c.X), float32(c.Y), float32(c.Z), 1)
		}
	}
	return img
}

// Write encodes the buffer in the given format. EXR needs w to be an io.WriteSeeker.
func Write(w io.Writer, buffer *renderer.PixelBuffer, format Format) error {
	switch format {
	case FormatPNG:
		return WritePNG(w, buffer)
	case FormatJPEG:
		return WriteJPEG(w, buffer, DefaultJPEGQuality)
	case FormatPPM:
		return WritePPM(w, buffer)
	case FormatPPMGzip:
		return WritePPMGzip(w, buffer)
	case FormatEXR:
		ws, ok := w.(io.WriteSeeker)
		if !ok {
			return ErrNotSeekable
		}
		return WriteEXR(ws, buffer)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteFile creates path, creating parent directories as needed, and writes the buffer
// to it. An empty format is taken from the file extension.
func WriteFile(path string, buffer *renderer.PixelBuffer, format Format) error {
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("output: creating %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}

	if err := Write(file, buffer, format); err != nil {
		file.Close()
		return fmt.Errorf("output: writing %s: %w", path, err)
	}
	return file.Close()
}
