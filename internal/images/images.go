// Package images turns uploaded product photos into gallery-ready JPEGs:
// decoded, downsampled to a maximum width and re-encoded at a fixed quality.
package images

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const (
	// maxWidth caps the stored width; narrower images are kept as-is,
	// never upscaled.
	maxWidth = 1400

	// jpegQuality is 0.7 of the maximum.
	jpegQuality = 70
)

// ErrDecode reports bytes that are not a supported image format.
var ErrDecode = errors.New("unsupported or corrupt image")

// Ingestor writes compressed images under UploadDir and hands back the URL
// path they will be served from.
type Ingestor struct {
	UploadDir string
	URLPrefix string
}

func NewIngestor(uploadDir string) *Ingestor {
	return &Ingestor{
		UploadDir: uploadDir,
		URLPrefix: "/static/uploads",
	}
}

// Ingest processes a single image and returns its displayable handle.
func (ing *Ingestor) Ingest(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}

	filename := uuid.New().String() + ".jpg"
	out, err := os.Create(filepath.Join(ing.UploadDir, filename))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}
	return ing.URLPrefix + "/" + filename, nil
}

// FileError pairs a failed upload with its cause.
type FileError struct {
	Filename string
	Err      error
}

func (e *FileError) Error() string {
	return e.Filename + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// IngestBatch processes each upload independently: one bad file never aborts
// its siblings. Handles come back in file order, failures per file.
func (ing *Ingestor) IngestBatch(files []*multipart.FileHeader) ([]string, []*FileError) {
	var handles []string
	var failures []*FileError

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			failures = append(failures, &FileError{Filename: fh.Filename, Err: err})
			continue
		}
		handle, err := ing.Ingest(f)
		f.Close()
		if err != nil {
			failures = append(failures, &FileError{Filename: fh.Filename, Err: err})
			continue
		}
		handles = append(handles, handle)
	}
	return handles, failures
}
