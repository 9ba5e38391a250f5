// Package extrinsic composes runtime calls into immutable call descriptors.
package extrinsic

import (
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/scale"
)

// Param is a named call argument with the SCALE type it is encoded as.
type Param struct {
	Name  string
	Type  string
	Value scale.Value
}

// Call is an unsigned call descriptor. It does not change across retries of one submission.
type Call struct {
	module   string
	function string
	params   []Param
}

// BuildCall composes module.function with ordered params. Parameter semantics are
// validated by the node at submission time.
func BuildCall(module, function string, params ...Param) Call {
	return Call{
		module:   module,
		function: function,
		params:   append([]Param(nil), params...),
	}
}

// Module returns the runtime module name.
func (c Call) Module() string { return c.module }

// Function returns the call name within the module.
func (c Call) Function() string { return c.function }

// Name returns the "Module.function" form used for metadata lookups.
func (c Call) Name() string { return c.module + "." + c.function }

// Params returns a copy of the ordered parameters.
func (c Call) Params() []Param {
	return append([]Param(nil), c.params...)
}

// Param returns the parameter with the given name.
func (c Call) Param(name string) (Param, bool) {
	for _, p := range c.params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}
