package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

var formatNames = map[string]ImageFormat{
	"png":  ImageFormatPNG,
	"jpeg": ImageFormatJPEG,
	"gif":  ImageFormatGIF,
	"bmp":  ImageFormatBMP,
	"tiff": ImageFormatTIFF,
	"webp": ImageFormatWebP,
}

// Normalize decodes an uploaded image in any supported format and re-encodes
// it as PNG for the extraction engine. It returns the PNG payload and the
// detected source format; undecodable payloads are rejected.
func Normalize(data []byte) ([]byte, ImageFormat, error) {
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("extract: decode image: %w", err)
	}
	format, ok := formatNames[name]
	if !ok {
		return nil, "", fmt.Errorf("extract: unsupported image format %q", name)
	}
	if format == ImageFormatPNG {
		return data, format, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("extract: encode png: %w", err)
	}
	return buf.Bytes(), format, nil
}
