package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/tweenkit/pkg/codegen"
	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

// Input formats accepted by --format.
const (
	formatAuto = "auto"
	formatJSON = "json"
	formatYAML = "yaml"
)

// readAnimations loads animations from each named file, or from stdin when
// args is empty or "-". Inputs may be an export document, a bare array or a
// single animation object, in JSON or YAML.
func readAnimations(cmd *cobra.Command, args []string, format string) ([]types.Animation, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var out []types.Animation
	for _, name := range args {
		data, err := readSource(cmd.InOrStdin(), name)
		if err != nil {
			return nil, sysError(err)
		}
		list, err := decodeAnimations(data, formatFor(name, format))
		if err != nil {
			return nil, userError(fmt.Errorf("%s: %w", displayName(name), err))
		}
		out = append(out, list...)
	}
	return out, nil
}

func readSource(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func displayName(name string) string {
	if name == "-" {
		return "stdin"
	}
	return name
}

// formatFor resolves auto format from the file extension.
func formatFor(name, format string) string {
	if format != formatAuto && format != "" {
		return format
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatJSON
}

// decodeAnimations parses data in the given format.
func decodeAnimations(data []byte, format string) ([]types.Animation, error) {
	switch format {
	case formatJSON:
	case formatYAML:
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '{' {
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &head); err != nil {
			return nil, err
		}
		if head.Type != "" {
			a, err := types.DecodeAnimation(data)
			if err != nil {
				return nil, err
			}
			return []types.Animation{a}, nil
		}
	}
	doc, err := codegen.ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return doc.Animations, nil
}

// yamlToJSON re-encodes a YAML document as JSON.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
