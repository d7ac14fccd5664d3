// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package namespace

const (
	defaultQuoteChar = `"`
	defaultSeparator = "."
)

// ParseOptions represents all possible options to FromName, New and
// FromEntries.
type ParseOptions struct {
	QuoteChar *string           // The character used for optional encapsulation of a component
	Separator *string           // The character used to separate components
	Defaults  map[string]string // Default values per namespace, consulted by FromName only
}

// Parse returns a pointer to a new ParseOptions.
func Parse() *ParseOptions {
	return &ParseOptions{}
}

// SetQuoteChar specifies the character used for optional encapsulation of a
// component. Defaults to `"`.
func (po *ParseOptions) SetQuoteChar(qc string) *ParseOptions {
	po.QuoteChar = &qc
	return po
}

// SetSeparator specifies the character used to separate components. Defaults
// to ".".
func (po *ParseOptions) SetSeparator(sep string) *ParseOptions {
	po.Separator = &sep
	return po
}

// SetDefaults specifies default values for namespaces. A default is only
// applied to a namespace if every less general namespace also resolves to a
// value, either directly or via another default.
func (po *ParseOptions) SetDefaults(defaults map[string]string) *ParseOptions {
	po.Defaults = defaults
	return po
}

// ToParseOptions combines the argued ParseOptions in a last-one-wins fashion,
// returning a new ParseOptions with the defaults filled in.
func ToParseOptions(opts ...*ParseOptions) *ParseOptions {
	parseOpts := Parse()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.QuoteChar != nil {
			parseOpts.QuoteChar = opt.QuoteChar
		}
		if opt.Separator != nil {
			parseOpts.Separator = opt.Separator
		}
		if opt.Defaults != nil {
			parseOpts.Defaults = opt.Defaults
		}
	}
	if parseOpts.QuoteChar == nil {
		qc := defaultQuoteChar
		parseOpts.QuoteChar = &qc
	}
	if parseOpts.Separator == nil {
		sep := defaultSeparator
		parseOpts.Separator = &sep
	}
	return parseOpts
}
