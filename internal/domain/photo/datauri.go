package photo

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/clinica-api/internal/httperr"
)

const pngDataURIPrefix = "data:image/png;base64,"

var ErrInvalidImage = httperr.Validation("invalid_image", "Imagem inválida.")

// DecodeDataURI aceita um data URI (ou base64 puro) e devolve bytes PNG.
// PNG é gravado como veio; os outros formatos são convertidos.
func DecodeDataURI(uri string) ([]byte, error) {
	payload := strings.TrimSpace(uri)
	if payload == "" {
		return nil, ErrInvalidImage
	}
	if strings.HasPrefix(payload, "data:") {
		meta, data, ok := strings.Cut(payload, ",")
		if !ok || !strings.Contains(meta, ";base64") {
			return nil, ErrInvalidImage
		}
		payload = data
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if raw, err = base64.RawStdEncoding.DecodeString(payload); err != nil {
			return nil, ErrInvalidImage
		}
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}
	if format == "png" {
		return raw, nil
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func EncodeDataURI(pngBytes []byte) string {
	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(pngBytes)
}
