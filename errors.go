// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package namespace

import (
	"fmt"
	"strings"
)

// SchemaOverflowError is returned when a name contains more components than
// the hierarchy it is being parsed into has namespaces.
type SchemaOverflowError struct {
	Name       string
	Namespaces []string
	Separator  string
}

func (soe SchemaOverflowError) Error() string {
	form := "<" + strings.Join(soe.Namespaces, ">"+soe.Separator+"<") + ">"
	return fmt.Sprintf("name %q has too many namespaces, should be of form: %s", soe.Name, form)
}

// IncompatibleSchemaError is returned when an existing ParsedNamespaces is
// re-parsed into a hierarchy that does not contain all of its namespaces.
type IncompatibleSchemaError struct {
	ExtraNamespaces []string
}

func (ise IncompatibleSchemaError) Error() string {
	return fmt.Sprintf(
		"parsed namespaces are not encapsulated by the given hierarchy, extra namespaces: %s",
		strings.Join(ise.ExtraNamespaces, ", "),
	)
}

// UnsupportedInputTypeError is returned when FromName is given a name that is
// neither a string nor a ParsedNamespaces.
type UnsupportedInputTypeError struct {
	Value interface{}
}

func (uite UnsupportedInputTypeError) Error() string {
	return fmt.Sprintf("cannot construct parsed namespaces from name of type %T", uite.Value)
}

// UnknownNamespaceError is returned by Lookup for a namespace identifier that
// is not part of the instance's hierarchy.
type UnknownNamespaceError struct {
	Namespace string
}

func (une UnknownNamespaceError) Error() string {
	return fmt.Sprintf("unknown namespace %q", une.Namespace)
}
