//go:build tools

// Package tools pins the versions of code generators run through
// `//go:generate go run <import path>`, so that they are built from the
// module graph in go.mod rather than whatever is installed locally.
//
// guidgen lives in this module and needs no entry here.
package tools

import _ "golang.org/x/tools/cmd/stringer"
