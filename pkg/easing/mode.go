package easing

import "strings"

// Mode is the syntactic form of an easing identifier.
type Mode int

// Identifier forms.
const (
	ModePreset Mode = iota
	ModeCustom
)

func (m Mode) String() string {
	if m == ModeCustom {
		return "custom"
	}
	return "preset"
}

// ClassifyMode reports whether id is custom notation or a preset name. Only
// the prefix is inspected; no table is consulted.
func ClassifyMode(id string) Mode {
	if strings.HasPrefix(id, CustomPrefix) {
		return ModeCustom
	}
	return ModePreset
}
