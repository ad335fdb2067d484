// Package base64 reads RFC 2397 data URIs carrying base64 payloads.
package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	scheme = "data:"
	marker = ";base64,"
)

var ErrNotDataURI = errors.New("value is not a base64 data URI")

type DataURI struct {
	ContentType string
	Data        []byte
}

// Parse splits and decodes a data URI such as "data:image/png;base64,iVBO...".
func Parse(value string) (DataURI, error) {
	contentType, payload, ok := split(value)
	if !ok {
		return DataURI{}, ErrNotDataURI
	}

	data, err := stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return DataURI{}, fmt.Errorf("decoding data URI payload: %w", err)
	}

	return DataURI{ContentType: contentType, Data: data}, nil
}

// GetContentType returns the media type of a data URI, or "" when value is not one.
func GetContentType(value string) string {
	contentType, _, _ := split(value)

	return contentType
}

// DecodedSize is the payload size in bytes without decoding it.
func DecodedSize(value string) int64 {
	_, payload, ok := split(value)
	if !ok {
		return int64(len(value))
	}

	return int64(stdBase64.StdEncoding.DecodedLen(len(payload)) - strings.Count(payload, "="))
}

func split(value string) (string, string, bool) {
	rest, ok := strings.CutPrefix(value, scheme)
	if !ok {
		return "", "", false
	}

	contentType, payload, ok := strings.Cut(rest, marker)
	if !ok || contentType == "" {
		return "", "", false
	}

	return contentType, payload, true
}
