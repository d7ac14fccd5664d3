// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package namespace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToParseOptionsDefaults(t *testing.T) {
	opts := ToParseOptions()
	require.Equal(t, `"`, *opts.QuoteChar)
	require.Equal(t, ".", *opts.Separator)
	require.Nil(t, opts.Defaults)

	opts = ToParseOptions(nil, Parse())
	require.Equal(t, `"`, *opts.QuoteChar)
	require.Equal(t, ".", *opts.Separator)
}

func TestToParseOptionsLastOneWins(t *testing.T) {
	first := Parse().SetQuoteChar("`").SetDefaults(map[string]string{"database": "db1"})
	second := Parse().SetSeparator("/").SetDefaults(map[string]string{"database": "db2"})

	opts := ToParseOptions(first, second)
	require.Equal(t, "`", *opts.QuoteChar)
	require.Equal(t, "/", *opts.Separator)
	require.Equal(t, map[string]string{"database": "db2"}, opts.Defaults)
}
