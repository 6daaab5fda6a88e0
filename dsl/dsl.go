// Package dsl parses the table configuration language and renders the result
// as YAML.
//
// A source is zero or more constant declarations followed by one mandatory
// root table expression:
//
//	retries = 3;
//	table([
//	    enabled = true,
//	    retries = ?{retries},
//	    backend = table([host = "localhost", port = 5432])
//	])
//
// Block comments are delimited by `<#` and `#>` and may span lines.
package dsl

import (
	"gopkg.in/yaml.v3"

	"github.com/thisisjab/tably/dsl/lexer"
	"github.com/thisisjab/tably/dsl/parser"
	"github.com/thisisjab/tably/dsl/value"
)

// Parse converts one configuration source into its root table. Every failure
// is a fault.Fault; the first error aborts the whole parse.
func Parse(src string) (*value.Table, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	return parser.New(tokens).ParseConfig()
}

// Translate parses src and marshals the resulting tree to a YAML document.
// Key order in the document equals declaration order in the source.
func Translate(src string) ([]byte, error) {
	root, err := Parse(src)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(root)
}
