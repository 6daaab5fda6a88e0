package parser

import (
	"fmt"

	"github.com/thisisjab/tably/dsl/value"
	"github.com/thisisjab/tably/fault"
)

// constTable holds the constants declared before the root table expression.
// A name binds once; a second declaration of the same name is rejected so a
// `?{name}` reference cannot mean different things at different offsets.
type constTable struct {
	values map[string]value.Value
}

func newConstTable() *constTable {
	return &constTable{values: make(map[string]value.Value)}
}

func (c *constTable) declare(name string, v value.Value) error {
	if _, ok := c.values[name]; ok {
		return fault.New(fault.DuplicateConstantCode,
			fmt.Sprintf("constant %q declared twice", name)).
			WithMetadata(map[string]any{"name": name})
	}

	c.values[name] = v
	return nil
}

func (c *constTable) lookup(name string) (value.Value, bool) {
	v, ok := c.values[name]
	return v, ok
}
