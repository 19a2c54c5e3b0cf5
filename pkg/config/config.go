package config

import (
	"golang.org/x/text/language"

	"github.com/arthur-debert/cmdhelp/pkg/errors"
	"github.com/arthur-debert/cmdhelp/pkg/locale"
)

// AppName is used for the config directory and environment prefix.
const AppName = "cmdhelp"

// Config holds the settings that shape rendered help.
type Config struct {
	// MaxWidth is the column budget; 0 or less disables wrapping.
	MaxWidth int `koanf:"max_width"`

	// Layout lists section names in render order.
	Layout []string `koanf:"layout"`

	// Language is a BCP 47 tag selecting the catalog.
	Language string `koanf:"language"`

	// TopicsDir holds help topic files.
	TopicsDir string `koanf:"topics_dir"`

	// Strings overrides catalog texts by key. Keys contain dots, so this is
	// filled from the raw "strings" subtree rather than decoded.
	Strings map[string]string `koanf:"-"`

	// Source is the config file that was loaded, if any.
	Source string `koanf:"-"`
}

// Tag parses Language.
func (c *Config) Tag() (language.Tag, error) {
	if c.Language == "" {
		return language.English, nil
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, errors.Wrapf(err, errors.ErrConfigParse, "invalid language %q", c.Language)
	}
	return tag, nil
}

// Catalog builds the message catalog for Language with the Strings
// overrides applied.
func (c *Config) Catalog() (*locale.MessageCatalog, error) {
	tag, err := c.Tag()
	if err != nil {
		return nil, err
	}

	overrides := make(map[locale.Key]string, len(c.Strings))
	for key, text := range c.Strings {
		overrides[locale.Key(key)] = text
	}

	catalog, err := locale.New(tag, overrides)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid strings table").
			WithDetail("source", c.Source)
	}
	return catalog, nil
}
