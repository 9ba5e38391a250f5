package scale

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Registry is an immutable table of primitive and custom type definitions.
// It is safe for concurrent use.
type Registry struct {
	named map[string]*node
}

// NewRegistry builds a registry from custom definitions on top of the primitive set and
// validates that every type reference resolves. All unresolved references are reported at once.
func NewRegistry(defs ...TypeDef) (*Registry, error) {
	b := &builder{
		named:    make(map[string]*node, len(primitives)+len(defs)),
		aliases:  make(map[string]string, len(builtinAliases)),
		visiting: make(map[string]bool),
	}
	for name, k := range primitives {
		b.named[name] = &node{kind: k, name: name}
	}
	for _, a := range builtinAliases {
		b.aliases[a.Name] = a.Type
	}

	var result *multierror.Error
	r := &Registry{named: b.named}
	seen := make(map[string]bool, len(defs))

	for _, def := range defs {
		name := def.TypeName()
		if err := validName(name); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if seen[name] {
			result = multierror.Append(result, fmt.Errorf("%w: duplicate type %q", ErrInvalidDefinition, name))
			continue
		}
		if _, ok := primitives[name]; ok {
			result = multierror.Append(result, fmt.Errorf("%w: %q shadows a primitive", ErrInvalidDefinition, name))
			continue
		}
		seen[name] = true

		switch d := def.(type) {
		case StructDef:
			if len(d.Fields) == 0 {
				result = multierror.Append(result, fmt.Errorf("%w: struct %q has no fields", ErrInvalidDefinition, name))
				continue
			}
			b.named[name] = &node{kind: kindStruct, name: name}
		case EnumDef:
			if len(d.Variants) == 0 || len(d.Variants) > 256 {
				result = multierror.Append(result, fmt.Errorf("%w: enum %q has %d variants", ErrInvalidDefinition, name, len(d.Variants)))
				continue
			}
			b.named[name] = &node{kind: kindEnum, name: name, variants: append([]string(nil), d.Variants...)}
		case AliasDef:
			b.aliases[name] = d.Type
		}
	}

	for name := range b.aliases {
		if _, err := b.resolve(name); err != nil {
			result = multierror.Append(result, fmt.Errorf("alias %s: %w", name, err))
		}
	}

	for _, def := range defs {
		d, ok := def.(StructDef)
		if !ok {
			continue
		}
		n, ok := b.named[d.Name]
		if !ok || n.kind != kindStruct || n.fields != nil {
			continue
		}
		fields := make([]fieldNode, 0, len(d.Fields))
		for _, f := range d.Fields {
			t, err := b.resolve(f.Type)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%s.%s: %w", d.Name, f.Name, err))
				continue
			}
			fields = append(fields, fieldNode{name: f.Name, typ: t})
		}
		n.fields = fields
	}

	done := make(map[*node]bool)
	for _, def := range defs {
		if n, ok := b.named[def.TypeName()]; ok && n.kind == kindStruct {
			if err := checkFinite(n, nil, done); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return r, nil
}

// checkFinite rejects structs that contain themselves without a Vec or Option in between.
// Such a type has no finite encoding and its decoding would never consume input.
func checkFinite(n *node, path []*node, done map[*node]bool) error {
	if n.kind != kindStruct || done[n] {
		return nil
	}
	for i, p := range path {
		if p == n {
			names := make([]string, 0, len(path)-i+1)
			for _, q := range path[i:] {
				names = append(names, q.name)
			}
			names = append(names, n.name)
			return fmt.Errorf("%w: struct %q contains itself: %s", ErrInvalidDefinition, n.name, strings.Join(names, " -> "))
		}
	}
	path = append(path, n)
	for _, f := range n.fields {
		if err := checkFinite(f.typ, path, done); err != nil {
			return err
		}
	}
	done[n] = true
	return nil
}

func (r *Registry) resolve(expr string) (*node, error) {
	return resolveExpr(expr, func(name string) (*node, error) {
		if n, ok := r.named[name]; ok {
			return n, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	})
}

type builder struct {
	named    map[string]*node
	aliases  map[string]string
	visiting map[string]bool
}

func (b *builder) resolve(expr string) (*node, error) {
	return resolveExpr(expr, b.lookup)
}

func (b *builder) lookup(name string) (*node, error) {
	if n, ok := b.named[name]; ok {
		return n, nil
	}
	target, ok := b.aliases[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	if b.visiting[name] {
		return nil, fmt.Errorf("%w: alias cycle through %q", ErrInvalidDefinition, name)
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	n, err := b.resolve(target)
	if err != nil {
		return nil, err
	}
	b.named[name] = n
	return n, nil
}

func resolveExpr(expr string, lookup func(string) (*node, error)) (*node, error) {
	expr = strings.TrimSpace(expr)
	outer, inner, generic, err := splitGeneric(expr)
	if err != nil {
		return nil, err
	}
	if !generic {
		return lookup(expr)
	}

	elem, err := resolveExpr(inner, lookup)
	if err != nil {
		return nil, err
	}
	switch outer {
	case "Vec":
		if elem.kind == kindU8 {
			return &node{kind: kindBytes, name: expr}, nil
		}
		return &node{kind: kindVec, name: expr, elem: elem}, nil
	case "Option":
		return &node{kind: kindOption, name: expr, elem: elem}, nil
	case "Compact":
		if !elem.isUnsigned() {
			return nil, fmt.Errorf("%w: compact of non-integer %q", ErrInvalidDefinition, inner)
		}
		return &node{kind: kindCompact, name: expr, elem: elem}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, expr)
	}
}

// splitGeneric splits "Outer<Inner>" into its parts.
func splitGeneric(expr string) (outer, inner string, generic bool, err error) {
	if expr == "" {
		return "", "", false, fmt.Errorf("%w: empty type", ErrUnknownType)
	}
	open := strings.IndexByte(expr, '<')
	if open < 0 {
		if strings.ContainsRune(expr, '>') {
			return "", "", false, fmt.Errorf("%w: %q", ErrUnknownType, expr)
		}
		return expr, "", false, nil
	}
	if open == 0 || !strings.HasSuffix(expr, ">") {
		return "", "", false, fmt.Errorf("%w: %q", ErrUnknownType, expr)
	}
	return strings.TrimSpace(expr[:open]), expr[open+1 : len(expr)-1], true, nil
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, "<> ") {
		return fmt.Errorf("%w: invalid type name %q", ErrInvalidDefinition, name)
	}
	return nil
}
