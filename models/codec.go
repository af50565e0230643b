package models

import (
	"encoding/base64"

	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot attribute maps are stored and shipped as msgpack rather
// than JSON. MessagePack keeps the BLOB column compact, and base64
// wrapping makes the same bytes safe to embed in JSON API payloads.

// EncodeAttrs serializes an attribute map for BLOB storage.
// A nil or empty map encodes to nil.
func EncodeAttrs(attrs map[string]string) ([]byte, error) {
	if len(attrs) == 0 {
		return nil, nil
	}

	data, err := msgpack.Marshal(attrs)
	if err != nil {
		return nil, serr.Wrap(err, "failed to encode attrs as msgpack")
	}
	return data, nil
}

// DecodeAttrs deserializes a stored attribute BLOB.
// Empty input decodes to nil.
func DecodeAttrs(data []byte) (map[string]string, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var attrs map[string]string
	if err := msgpack.Unmarshal(data, &attrs); err != nil {
		return nil, serr.Wrap(err, "failed to decode msgpack attrs")
	}
	return attrs, nil
}

// PackAttrs encodes an attribute map for transport inside JSON:
// msgpack then base64. An empty map packs to the empty string.
func PackAttrs(attrs map[string]string) (string, error) {
	data, err := EncodeAttrs(attrs)
	if err != nil {
		return "", err
	}
	if data == nil {
		return "", nil
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// UnpackAttrs reverses PackAttrs. The empty string unpacks to nil.
func UnpackAttrs(packed string) (map[string]string, error) {
	if packed == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(packed)
	if err != nil {
		return nil, serr.Wrap(err, "failed to decode base64 attrs")
	}
	return DecodeAttrs(data)
}
