// Package upload turns uploaded images into data URLs that are stored
// alongside payments and expenses.
package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/exp/slices"
)

var (
	ErrInvalidFileType = errors.New("invalid file type, only JPEG, PNG and GIF images are allowed")
	ErrFileTooLarge    = errors.New("the uploaded file is too large")
)

// AllowedTypes are the content types accepted for images.
var AllowedTypes = []string{"image/jpeg", "image/png", "image/gif"}

// Encode reads the uploaded file and returns it as data URL.
//
// Both the content type declared by the client and the one detected from
// the content must be allowed.
func Encode(fh *multipart.FileHeader, maxBytes int64) (string, error) {
	declared, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil || !slices.Contains(AllowedTypes, declared) {
		return "", ErrInvalidFileType
	}

	if fh.Size > maxBytes {
		return "", ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("could not open uploaded file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("could not read uploaded file: %w", err)
	}

	if int64(len(content)) > maxBytes {
		return "", ErrFileTooLarge
	}

	return EncodeBytes(declared, content)
}

// EncodeBytes returns content as data URL with the given content type if
// the detected type matches it.
func EncodeBytes(contentType string, content []byte) (string, error) {
	detected := mimetype.Detect(content)
	if !detected.Is(contentType) {
		return "", ErrInvalidFileType
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(content)), nil
}
