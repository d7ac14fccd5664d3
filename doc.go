// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package namespace parses hierarchical, optionally-quoted identifier
// strings, such as database table references of the form
// "<database>.<schema>.<table>", against an ordered namespace hierarchy.
//
// A hierarchy is an ordered list of namespace identifiers from most to least
// general, e.g. []string{"database", "table"}. Parsing the name
// "my_db.my_table" against that hierarchy yields a ParsedNamespaces whose
// "database" namespace is "my_db" and whose "table" namespace is "my_table".
// Partial names are interpreted as the least general namespaces: parsing
// "my_table" alone leaves "database" unset.
//
// ParsedNamespaces values are immutable once constructed and are safe for
// concurrent use without synchronization.
package namespace
