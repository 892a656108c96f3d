package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

// Version is the export document format version.
const Version = "1.0"

// TimeLayout is the exportedAt layout: RFC 3339 in UTC with milliseconds.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// ErrUnsupportedVersion is returned by ParseDocument for an envelope whose
// version it does not read.
var ErrUnsupportedVersion = errors.New("unsupported export version")

// Document is the export envelope.
type Document struct {
	Version    string           `json:"version"`
	ExportedAt string           `json:"exportedAt"`
	Animations types.Animations `json:"animations"`
}

// NewDocument wraps list in an envelope stamped with at.
func NewDocument(list []types.Animation, at time.Time) Document {
	if list == nil {
		list = []types.Animation{}
	}
	return Document{
		Version:    Version,
		ExportedAt: at.UTC().Format(TimeLayout),
		Animations: list,
	}
}

// Time parses ExportedAt.
func (d Document) Time() (time.Time, error) {
	return time.Parse(TimeLayout, d.ExportedAt)
}

// Export returns the indented JSON envelope for list.
func Export(list []types.Animation, at time.Time) ([]byte, error) {
	return marshalIndent(NewDocument(list, at))
}

// Snapshot returns list as an indented bare JSON array. An empty list is
// "[]".
func Snapshot(list []types.Animation) ([]byte, error) {
	if list == nil {
		list = []types.Animation{}
	}
	return marshalIndent(list)
}

// ParseDocument reads an export envelope or a bare array of animations.
func ParseDocument(data []byte) (Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list types.Animations
		if err := json.Unmarshal(data, &list); err != nil {
			return Document{}, fmt.Errorf("decoding animations: %w", err)
		}
		return Document{Version: Version, Animations: nonNil(list)}, nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decoding export document: %w", err)
	}
	if doc.Version != Version {
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, doc.Version)
	}
	doc.Animations = nonNil(doc.Animations)
	return doc, nil
}

func nonNil(list types.Animations) types.Animations {
	if list == nil {
		return types.Animations{}
	}
	return list
}

// marshalIndent encodes v with two-space indentation and without HTML
// escaping, so selectors such as "ul > li" stay readable.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
