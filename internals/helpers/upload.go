// file: internals/helpers/upload.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"ktx_backend/internals/constants"
)

const uploadRoot = "./uploads"

// SaveUpload stores a multipart file under ./uploads/<folder>/ and returns
// the relative path. Images are downscaled and re-encoded to webp; other
// file types (pdf, docx, ...) are stored as-is.
func SaveUpload(folder string, fileHeader *multipart.FileHeader) (string, error) {
	kind := constants.DetectFileKindFromExt(fileHeader.Filename)
	if kind == constants.FileKindUnknown {
		return "", fmt.Errorf("unsupported file type %q", filepath.Ext(fileHeader.Filename))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(uploadRoot, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("upload dir: %w", err)
	}

	name := uniqueFilename(fileHeader.Filename)

	if kind == constants.FileKindImage {
		img, _, err := image.Decode(src)
		if err != nil {
			return "", fmt.Errorf("decode image: %w", err)
		}
		// cap the long side at 1600px, evidence photos come straight off phones
		if img.Bounds().Dx() > 1600 || img.Bounds().Dy() > 1600 {
			img = imaging.Fit(img, 1600, 1600, imaging.Lanczos)
		}
		buf := new(bytes.Buffer)
		if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
			return "", fmt.Errorf("encode webp: %w", err)
		}
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".webp"
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return "", fmt.Errorf("write upload: %w", err)
		}
		return filepath.ToSlash(filepath.Join(folder, name)), nil
	}

	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	defer out.Close()
	if _, err := out.ReadFrom(src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return filepath.ToSlash(filepath.Join(folder, name)), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func uniqueFilename(original string) string {
	safe := unsafeFilenameChars.ReplaceAllString(original, "_")
	return fmt.Sprintf("%s-%s-%s", time.Now().Format("20060102"), uuid.New().String(), safe)
}
