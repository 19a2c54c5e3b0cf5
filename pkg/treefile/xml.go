package treefile

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/cmdhelp/pkg/errors"
)

// decodeXML reads the XML form:
//
//	<command name="tool" root="true">
//	  <description>Builds things</description>
//	  <option name="--output" help-name="dir" default="./dist">
//	    <alias>-o</alias>
//	  </option>
//	  <command name="build">
//	    <argument name="targets" arity="zero_or_more"/>
//	  </command>
//	</command>
//
// Descriptions may be given as an attribute or a child element. Repeated
// <default> children make a list default.
func decodeXML(data []byte) (*commandSpec, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrTreeParse, "invalid XML definition")
	}

	root := doc.Root()
	if root == nil || root.Tag != "command" {
		return nil, errors.New(errors.ErrTreeParse, "XML definition must have a <command> root element")
	}
	return xmlCommand(root)
}

func xmlCommand(el *etree.Element) (*commandSpec, error) {
	spec := &commandSpec{
		Name:        el.SelectAttrValue("name", ""),
		Description: xmlDescription(el),
		Aliases:     xmlTexts(el, "alias"),
	}

	var err error
	if spec.Hidden, err = xmlBool(el, "hidden"); err != nil {
		return nil, err
	}
	if spec.Root, err = xmlBool(el, "root"); err != nil {
		return nil, err
	}
	if attr := el.SelectAttr("treat-unmatched-tokens-as-errors"); attr != nil {
		treat, err := xmlBool(el, attr.Key)
		if err != nil {
			return nil, err
		}
		spec.TreatUnmatchedTokensAsErrors = &treat
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "argument":
			arg, err := xmlArgument(child)
			if err != nil {
				return nil, err
			}
			spec.Arguments = append(spec.Arguments, *arg)
		case "option":
			opt, err := xmlOption(child)
			if err != nil {
				return nil, err
			}
			spec.Options = append(spec.Options, *opt)
		case "command":
			sub, err := xmlCommand(child)
			if err != nil {
				return nil, err
			}
			spec.Commands = append(spec.Commands, *sub)
		case "alias", "description":
		default:
			return nil, errors.Newf(errors.ErrTreeParse, "unexpected element <%s> in <%s>", child.Tag, el.Tag).
				WithDetail("command", el.SelectAttrValue("name", ""))
		}
	}
	return spec, nil
}

func xmlArgument(el *etree.Element) (*argumentSpec, error) {
	hidden, err := xmlBool(el, "hidden")
	if err != nil {
		return nil, err
	}
	return &argumentSpec{
		Name:        el.SelectAttrValue("name", ""),
		Ref:         el.SelectAttrValue("ref", ""),
		Description: xmlDescription(el),
		HelpName:    el.SelectAttrValue("help-name", ""),
		Hidden:      hidden,
		Arity:       el.SelectAttrValue("arity", ""),
		Choices:     xmlTexts(el, "choice"),
		Default:     xmlDefault(el),
	}, nil
}

func xmlOption(el *etree.Element) (*optionSpec, error) {
	spec := &optionSpec{
		Name:        el.SelectAttrValue("name", ""),
		Aliases:     xmlTexts(el, "alias"),
		Description: xmlDescription(el),
		Arity:       el.SelectAttrValue("arity", ""),
		HelpName:    el.SelectAttrValue("help-name", ""),
		Choices:     xmlTexts(el, "choice"),
		Default:     xmlDefault(el),
	}

	flags := map[string]*bool{
		"hidden":    &spec.Hidden,
		"required":  &spec.Required,
		"recursive": &spec.Recursive,
		"flag":      &spec.Flag,
	}
	for key, dst := range flags {
		v, err := xmlBool(el, key)
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	return spec, nil
}

func xmlDescription(el *etree.Element) string {
	if child := el.SelectElement("description"); child != nil {
		return strings.TrimSpace(child.Text())
	}
	return el.SelectAttrValue("description", "")
}

func xmlTexts(el *etree.Element, tag string) []string {
	var out []string
	for _, child := range el.SelectElements(tag) {
		out = append(out, strings.TrimSpace(child.Text()))
	}
	return out
}

// xmlDefault returns nil when no default is declared.
func xmlDefault(el *etree.Element) any {
	if values := xmlTexts(el, "default"); len(values) > 0 {
		if len(values) == 1 {
			return values[0]
		}
		return values
	}
	if attr := el.SelectAttr("default"); attr != nil {
		return attr.Value
	}
	return nil
}

func xmlBool(el *etree.Element, key string) (bool, error) {
	raw := el.SelectAttrValue(key, "")
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrTreeParse, "attribute %s of <%s> is not a boolean", key, el.Tag).
			WithDetail("value", raw)
	}
	return v, nil
}
