// Package iniconf parses the INI-like model configuration documents written
// by the topic model builder.
//
// A document consists of bracketed section headers, key = value pairs,
// ";"-prefixed comments and blank lines. A blank line closes the current
// section so that later pairs are stored at the top level again.
//
// Parsing is permissive: lines that do not match any known form are dropped
// and never produce an error. Callers that want to see dropped lines can
// install a hook with [WithDiagnostics].
//
//	cfg := iniconf.Parse("a=1\n[S]\nb=2\n\nc=3")
//	v, _ := cfg.Lookup("S.b") // "2"
//
// All values are plain text. No numeric or boolean interpretation is done
// here.
package iniconf
