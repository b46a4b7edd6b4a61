package campaign

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/myrjola/sustainscore/internal/errors"
	"gopkg.in/yaml.v3"
)

var ErrMalformedDocument = errors.NewSentinel("malformed campaign document")

// Decode reads one JSON document from r. Unknown fields and trailing data are rejected.
func Decode(r io.Reader) (Document, error) {
	var d Document
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&d); err != nil {
		return Document{}, errors.Join(ErrMalformedDocument, errors.Wrap(err, "decode json"))
	}
	if decoder.More() {
		return Document{}, errors.Wrap(ErrMalformedDocument, "trailing data after document")
	}
	return d, nil
}

// DecodeFile reads a YAML or JSON document from path.
func DecodeFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.Wrap(err, "read campaign file", slog.String("path", path))
	}
	var d Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err = decoder.Decode(&d); err != nil {
		return Document{}, errors.Join(ErrMalformedDocument,
			errors.Wrap(err, "decode yaml", slog.String("path", path)))
	}
	return d, nil
}
