package utils

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DecodeBase64Image accepts either a bare base64 string or a data URI and
// returns the decoded bytes with a file extension derived from the content.
func DecodeBase64Image(encodedImage string) ([]byte, string, string, error) {
	payload := strings.TrimSpace(encodedImage)
	if payload == "" {
		return nil, "", "", errors.New("empty image")
	}

	if strings.HasPrefix(payload, "data:") {
		parts := strings.SplitN(payload, ",", 2)
		if len(parts) != 2 {
			return nil, "", "", errors.New("invalid data uri")
		}
		payload = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", "", err
	}

	contentType := mimetype.Detect(data).String()
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, "", "", errors.New("unsupported image type " + contentType)
	}
	return data, contentType, ext, nil
}
