// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package namespace

import (
	"strings"

	"github.com/pkg/errors"
)

// Entry is one namespace of a ParsedNamespaces together with its value. Set
// distinguishes a namespace resolved to the empty string from one that was
// never resolved at all.
type Entry struct {
	Namespace string
	Value     string
	Set       bool
}

// ParsedNamespaces is an immutable parsed representation of a hierarchical
// name. Instances should be constructed via FromName, New or FromEntries.
type ParsedNamespaces struct {
	entries   []Entry
	quoteChar string
	separator string
}

// New creates a ParsedNamespaces from a mapping of namespaces to values and
// an ordered hierarchy of namespaces, from most to least general. Namespaces
// in the hierarchy that are absent from names are left unset.
func New(names map[string]string, namespaces []string, opts ...*ParseOptions) (*ParsedNamespaces, error) {
	entries := make([]Entry, 0, len(namespaces))
	for _, ns := range namespaces {
		value, ok := names[ns]
		entries = append(entries, Entry{Namespace: ns, Value: value, Set: ok})
	}
	return FromEntries(entries, opts...)
}

// FromEntries creates a ParsedNamespaces from an ordered slice of entries,
// from most to least general.
func FromEntries(entries []Entry, opts ...*ParseOptions) (*ParsedNamespaces, error) {
	parseOpts := ToParseOptions(opts...)
	return newParsedNamespaces(entries, parseOpts)
}

func newParsedNamespaces(entries []Entry, parseOpts *ParseOptions) (*ParsedNamespaces, error) {
	seen := make(map[string]struct{}, len(entries))
	copied := make([]Entry, len(entries))
	for i, e := range entries {
		if _, ok := seen[e.Namespace]; ok {
			return nil, errors.Errorf("duplicate namespace %q in hierarchy", e.Namespace)
		}
		seen[e.Namespace] = struct{}{}
		if !e.Set {
			e.Value = ""
		}
		copied[i] = e
	}
	return &ParsedNamespaces{
		entries:   copied,
		quoteChar: *parseOpts.QuoteChar,
		separator: *parseOpts.Separator,
	}, nil
}

// Lookup returns the value of the given namespace. The boolean return is
// false if the namespace is part of the hierarchy but was never resolved. An
// UnknownNamespaceError is returned for a namespace outside the hierarchy.
func (pn *ParsedNamespaces) Lookup(namespace string) (string, bool, error) {
	for _, e := range pn.entries {
		if e.Namespace == namespace {
			return e.Value, e.Set, nil
		}
	}
	return "", false, UnknownNamespaceError{Namespace: namespace}
}

// Namespaces returns the hierarchy of namespaces, from most to least general.
func (pn *ParsedNamespaces) Namespaces() []string {
	namespaces := make([]string, len(pn.entries))
	for i, e := range pn.entries {
		namespaces[i] = e.Namespace
	}
	return namespaces
}

// Name returns the full quoted name. Only resolved namespaces contribute a
// component; each component is individually encapsulated in the quote
// character and components are joined by the separator. The empty string is
// returned when no namespace is resolved.
func (pn *ParsedNamespaces) Name() string {
	values := make([]string, 0, len(pn.entries))
	for _, e := range pn.entries {
		if e.Set && e.Value != "" {
			values = append(values, e.Value)
		}
	}
	if len(values) == 0 {
		return ""
	}
	glue := pn.quoteChar + pn.separator + pn.quoteChar
	return pn.quoteChar + strings.Join(values, glue) + pn.quoteChar
}

// Parent returns a new ParsedNamespaces with the most specific namespace
// removed from the hierarchy. The parent of an empty hierarchy is another
// empty hierarchy.
func (pn *ParsedNamespaces) Parent() *ParsedNamespaces {
	entries := pn.entries
	if len(entries) > 0 {
		entries = entries[:len(entries)-1]
	}
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &ParsedNamespaces{
		entries:   copied,
		quoteChar: pn.quoteChar,
		separator: pn.separator,
	}
}

// Entries returns the parsed entries from most to least general. The returned
// slice is a copy; mutating it does not affect the instance.
func (pn *ParsedNamespaces) Entries() []Entry {
	entries := make([]Entry, len(pn.entries))
	copy(entries, pn.entries)
	return entries
}

// IsZero returns true if no namespace resolved to a non-empty value.
func (pn *ParsedNamespaces) IsZero() bool {
	return pn.Name() == ""
}

// Equal compares two ParsedNamespaces component-wise, including their quote
// and separator characters.
func (pn *ParsedNamespaces) Equal(other *ParsedNamespaces) bool {
	if pn == nil || other == nil {
		return pn == other
	}
	if pn.quoteChar != other.quoteChar || pn.separator != other.separator {
		return false
	}
	if len(pn.entries) != len(other.entries) {
		return false
	}
	for i, e := range pn.entries {
		if e != other.entries[i] {
			return false
		}
	}
	return true
}

func (pn *ParsedNamespaces) String() string {
	return pn.Name()
}

// GoString implements fmt.GoStringer, rendering as Namespace<"db"."table">.
func (pn *ParsedNamespaces) GoString() string {
	return "Namespace<" + pn.Name() + ">"
}
