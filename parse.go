// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package namespace

import "unicode/utf8"

// FromName parses name into the given hierarchy of namespaces, ordered from
// most to least general.
//
// If name is a string it is split into components, honoring the quote
// character, and the components are assigned to the least general namespaces
// in order; more general namespaces are left unset. A name with more
// components than the hierarchy has namespaces produces a
// SchemaOverflowError.
//
// If name is a ParsedNamespaces, its namespaces must all be present in the
// given hierarchy, else an IncompatibleSchemaError is returned; its resolved
// values are carried over and its own quote and separator characters are
// discarded in favor of the given options.
//
// Defaults from the options are applied from the least general namespace
// upward. A default is applied to an unresolved namespace only while every
// less general namespace has resolved; the first unresolved namespace without
// a default ends the defaulting pass entirely.
func FromName(name interface{}, namespaces []string, opts ...*ParseOptions) (*ParsedNamespaces, error) {
	parseOpts := ToParseOptions(opts...)

	var entries []Entry
	switch n := name.(type) {
	case *ParsedNamespaces:
		if n == nil {
			return nil, UnsupportedInputTypeError{Value: name}
		}
		var err error
		entries, err = rescope(n, namespaces)
		if err != nil {
			return nil, err
		}
	case ParsedNamespaces:
		var err error
		entries, err = rescope(&n, namespaces)
		if err != nil {
			return nil, err
		}
	case string:
		components := splitComponents(n, *parseOpts.QuoteChar, *parseOpts.Separator)
		if len(components) > len(namespaces) {
			return nil, SchemaOverflowError{
				Name:       n,
				Namespaces: namespaces,
				Separator:  *parseOpts.Separator,
			}
		}
		entries = make([]Entry, len(namespaces))
		offset := len(namespaces) - len(components)
		for i, ns := range namespaces {
			entries[i] = Entry{Namespace: ns}
			if i >= offset {
				entries[i].Value = components[i-offset]
				entries[i].Set = true
			}
		}
	default:
		return nil, UnsupportedInputTypeError{Value: name}
	}

	applyDefaults(entries, parseOpts.Defaults)
	return newParsedNamespaces(entries, parseOpts)
}

// rescope carries the values of pn over into the target hierarchy, which must
// contain every namespace of pn.
func rescope(pn *ParsedNamespaces, namespaces []string) ([]Entry, error) {
	target := make(map[string]struct{}, len(namespaces))
	for _, ns := range namespaces {
		target[ns] = struct{}{}
	}

	var extra []string
	values := make(map[string]Entry, len(pn.entries))
	for _, e := range pn.entries {
		if _, ok := target[e.Namespace]; !ok {
			extra = append(extra, e.Namespace)
		}
		values[e.Namespace] = e
	}
	if len(extra) > 0 {
		return nil, IncompatibleSchemaError{ExtraNamespaces: extra}
	}

	entries := make([]Entry, len(namespaces))
	for i, ns := range namespaces {
		entries[i] = Entry{Namespace: ns}
		if e, ok := values[ns]; ok {
			entries[i].Value = e.Value
			entries[i].Set = e.Set
		}
	}
	return entries, nil
}

// applyDefaults fills unresolved entries from least to most general. The pass
// stops at the first unresolved entry without a default, so defaults never
// apply above an unresolved gap.
func applyDefaults(entries []Entry, defaults map[string]string) {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Set && entries[i].Value != "" {
			continue
		}
		value, ok := defaults[entries[i].Namespace]
		if !ok {
			break
		}
		entries[i].Value = value
		entries[i].Set = true
	}
}

// splitComponents splits a raw name into its components, in written order. A
// run of characters containing neither the separator nor the quote character
// is one component; a quote-delimited span is one component with the quotes
// stripped, and may contain the separator. The first closing quote always
// terminates a span; there is no escape syntax. A quote without a closing
// quote is skipped and the rest of the name is split on the separator as
// usual.
func splitComponents(name, quoteChar, separator string) []string {
	qc, _ := utf8.DecodeRuneInString(quoteChar)
	sep, _ := utf8.DecodeRuneInString(separator)

	var components []string
	runes := []rune(name)
	for i := 0; i < len(runes); {
		switch runes[i] {
		case sep:
			i++
		case qc:
			j := i + 1
			for j < len(runes) && runes[j] != qc {
				j++
			}
			if j == len(runes) {
				i++
				continue
			}
			components = append(components, string(runes[i+1:j]))
			i = j + 1
		default:
			j := i
			for j < len(runes) && runes[j] != sep && runes[j] != qc {
				j++
			}
			components = append(components, string(runes[i:j]))
			i = j
		}
	}
	return components
}
