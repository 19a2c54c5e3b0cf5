package treefile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cmdhelp/pkg/cli"
	"github.com/arthur-debert/cmdhelp/pkg/errors"
	"github.com/arthur-debert/cmdhelp/pkg/logging"
)

// Format is a definition file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".xml":
		return FormatXML, nil
	}
	return "", errors.Newf(errors.ErrTreeLoad, "unsupported definition format %q", filepath.Ext(path)).
		WithDetail("path", path)
}

// Load reads a definition file and returns the root command.
func Load(path string) (*cli.Command, error) {
	logger := logging.GetLogger("treefile")

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTreeLoad, "failed to read %s", path).
			WithDetail("path", path)
	}

	root, err := Parse(data, format)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().Str("path", path).Str("format", string(format)).Str("root", root.Name()).Msg("Loaded command tree")
	return root, nil
}

// Parse decodes a definition in the given format.
func Parse(data []byte, format Format) (*cli.Command, error) {
	var spec commandSpec

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&spec); err != nil {
			return nil, errors.Wrap(err, errors.ErrTreeParse, "invalid YAML definition")
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&spec); err != nil {
			return nil, errors.Wrap(err, errors.ErrTreeParse, "invalid TOML definition")
		}
	case FormatXML:
		s, err := decodeXML(data)
		if err != nil {
			return nil, err
		}
		spec = *s
	default:
		return nil, errors.Newf(errors.ErrTreeLoad, "unsupported definition format %q", format)
	}

	b := &builder{}
	return b.command(spec, nil, nil)
}
