package webapi

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"mime"
	"net/http"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// GetImage downloads and decodes an artwork image. uri is an absolute URL
// as found in Image.URL; no authorization is sent.
//
// JPEG and PNG are selected from the Content-Type header. Any other type
// is sniffed from the body, which covers GIF, WebP and BMP. The returned
// string is the format name.
func (c *Client) GetImage(ctx context.Context, uri string) (image.Image, string, error) {
	resp, err := c.withRetry(ctx, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, fmt.Errorf("webapi: failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		return c.send(req)
	})
	if err != nil {
		return nil, "", err
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := readBody(resp)
	if err != nil {
		return nil, "", err
	}

	img, format, err := decodeImage(contentType, body)
	if err != nil {
		return nil, "", &DecodeError{Err: err}
	}
	return img, format, nil
}

func decodeImage(contentType string, body []byte) (image.Image, string, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)

	switch mediaType {
	case "image/jpeg":
		img, err := jpeg.Decode(bytes.NewReader(body))
		return img, "jpeg", err
	case "image/png":
		img, err := png.Decode(bytes.NewReader(body))
		return img, "png", err
	default:
		return image.Decode(bytes.NewReader(body))
	}
}
