package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	jsonsyntax "github.com/mcvoid/jsonsyntax"
)

// profileDoc is the on-disk shape of a named printer profile: a base
// preset plus optional overrides. Decoded the way
// Ap3pp3rs94-Chartly2.0's profile.go decodes a YAML document into a typed
// struct (yaml.NewDecoder + KnownFields) before turning it into a domain
// value -- here, a jsonsyntax.PrintOptions instead of a connector profile.
type profileDoc struct {
	Preset string `yaml:"preset"`
	Indent struct {
		Tabs  bool `yaml:"tabs"`
		Count int  `yaml:"count"`
	} `yaml:"indent"`
	ExpandAfterItems int  `yaml:"expandAfterItems"`
	ExpandAfterWidth int  `yaml:"expandAfterWidth"`
	AlwaysExpand     bool `yaml:"alwaysExpand"`
}

// loadProfile reads a YAML profile file at path and builds the
// jsonsyntax.PrintOptions it describes.
func loadProfile(path string) (jsonsyntax.PrintOptions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return jsonsyntax.PrintOptions{}, fmt.Errorf("jsonfmt: read profile: %w", err)
	}

	var doc profileDoc
	dec := yaml.NewDecoder(strings.NewReader(string(b)))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return jsonsyntax.PrintOptions{}, fmt.Errorf("jsonfmt: parse profile %s: %w", path, err)
	}

	opts, err := presetOptions(doc.Preset)
	if err != nil {
		return jsonsyntax.PrintOptions{}, err
	}

	if doc.Indent.Count > 0 {
		if doc.Indent.Tabs {
			opts.Indent = jsonsyntax.Tabs(doc.Indent.Count)
		} else {
			opts.Indent = jsonsyntax.Spaces(doc.Indent.Count)
		}
	}

	switch {
	case doc.AlwaysExpand:
		l := jsonsyntax.LimitAlways()
		opts.ArrayLimit, opts.ObjectLimit = &l, &l
	case doc.ExpandAfterItems > 0 && doc.ExpandAfterWidth > 0:
		l := jsonsyntax.LimitItemOrWidth(doc.ExpandAfterItems, doc.ExpandAfterWidth)
		opts.ArrayLimit, opts.ObjectLimit = &l, &l
	case doc.ExpandAfterItems > 0:
		l := jsonsyntax.LimitItem(doc.ExpandAfterItems)
		opts.ArrayLimit, opts.ObjectLimit = &l, &l
	case doc.ExpandAfterWidth > 0:
		l := jsonsyntax.LimitWidth(doc.ExpandAfterWidth)
		opts.ArrayLimit, opts.ObjectLimit = &l, &l
	}

	return opts, nil
}

func presetOptions(name string) (jsonsyntax.PrintOptions, error) {
	switch strings.ToLower(name) {
	case "", "pretty":
		return jsonsyntax.Pretty(), nil
	case "compact":
		return jsonsyntax.Compact(), nil
	case "inline":
		return jsonsyntax.Inline(), nil
	default:
		return jsonsyntax.PrintOptions{}, fmt.Errorf("jsonfmt: unknown preset %q", name)
	}
}

// resolvePrintOptions treats profile as a preset name ("pretty", "compact",
// "inline") first, falling back to loading it as a YAML profile file path.
func resolvePrintOptions(profile string) (jsonsyntax.PrintOptions, error) {
	switch profile {
	case "pretty", "compact", "inline":
		return presetOptions(profile)
	default:
		return loadProfile(profile)
	}
}
