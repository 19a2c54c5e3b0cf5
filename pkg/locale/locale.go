// Package locale supplies the fixed strings that appear in help output.
//
// The renderer never embeds headings or tokens itself; it asks a Catalog for
// them by Key. MessageCatalog is backed by golang.org/x/text so callers can
// register translations per language tag.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/arthur-debert/cmdhelp/pkg/errors"
)

// Key identifies one localizable string.
type Key string

const (
	DescriptionTitle              Key = "help.description.title"
	UsageTitle                    Key = "help.usage.title"
	ArgumentsTitle                Key = "help.arguments.title"
	OptionsTitle                  Key = "help.options.title"
	CommandsTitle                 Key = "help.commands.title"
	AdditionalArgumentsTitle      Key = "help.additional_arguments.title"
	AdditionalArgumentsDesc       Key = "help.additional_arguments.description"
	UsageOptionsToken             Key = "help.usage.options"
	UsageCommandToken             Key = "help.usage.command"
	UsageAdditionalArgumentsToken Key = "help.usage.additional_arguments"
	HelpOptionDescription         Key = "help.option.help.description"
	VersionOptionDescription      Key = "help.option.version.description"
	RequiredLabel                 Key = "help.option.required"
	DefaultValueLabel             Key = "help.default.label"
	TopicsTitle                   Key = "help.topics.title"
)

var english = map[Key]string{
	DescriptionTitle:              "Description:",
	UsageTitle:                    "Usage:",
	ArgumentsTitle:                "Arguments:",
	OptionsTitle:                  "Options:",
	CommandsTitle:                 "Commands:",
	AdditionalArgumentsTitle:      "Additional Arguments:",
	AdditionalArgumentsDesc:       "Arguments passed to the application that is being run.",
	UsageOptionsToken:             "[options]",
	UsageCommandToken:             "[command]",
	UsageAdditionalArgumentsToken: "[<additional arguments>]",
	HelpOptionDescription:         "Show help and usage information",
	VersionOptionDescription:      "Show version information",
	RequiredLabel:                 "(REQUIRED)",
	DefaultValueLabel:             "default",
	TopicsTitle:                   "Topics:",
}

// Keys lists every known key.
func Keys() []Key {
	keys := make([]Key, 0, len(english))
	for k := range english {
		keys = append(keys, k)
	}
	return keys
}

// Catalog looks up localized strings.
type Catalog interface {
	Text(key Key) string
}

// MessageCatalog resolves keys through an x/text message printer.
type MessageCatalog struct {
	tag     language.Tag
	printer *message.Printer
}

// Default returns the English catalog.
func Default() *MessageCatalog {
	c, err := New(language.English, nil)
	if err != nil {
		// the English table is static; failing here is a programming error
		panic(err)
	}
	return c
}

// New builds a catalog for tag. Every key resolves to its English text unless
// overrides replaces it. Unknown keys in overrides are rejected.
func New(tag language.Tag, overrides map[Key]string) (*MessageCatalog, error) {
	for key := range overrides {
		if _, known := english[key]; !known {
			return nil, errors.Newf(errors.ErrInvalidArgument, "unknown locale key %q", key)
		}
	}

	b := catalog.NewBuilder()
	for key, msg := range english {
		if err := b.SetString(language.English, string(key), escape(msg)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "registering %s", key)
		}
		if override, ok := overrides[key]; ok {
			msg = override
		}
		if err := b.SetString(tag, string(key), escape(msg)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidArgument, "registering %s", key)
		}
	}

	return &MessageCatalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
	}, nil
}

// messages are printed as format strings
func escape(msg string) string {
	return strings.ReplaceAll(msg, "%", "%%")
}

// Tag returns the language the catalog prints in.
func (c *MessageCatalog) Tag() language.Tag { return c.tag }

// Text returns the string for key.
func (c *MessageCatalog) Text(key Key) string {
	return c.printer.Sprintf(string(key))
}
