package scale

// TypeDef is a named registry entry. It is one of StructDef, EnumDef or AliasDef.
type TypeDef interface {
	TypeName() string
	typeDef()
}

// StructDef is an ordered list of fields, decoded in declaration order.
type StructDef struct {
	Name   string
	Fields []FieldDef
}

// FieldDef is a struct member with a type string such as "u64" or "Vec<u8>".
type FieldDef struct {
	Name string
	Type string
}

// EnumDef is an ordered list of variant names decoded from a one-byte discriminant.
type EnumDef struct {
	Name     string
	Variants []string
}

// AliasDef names another type string.
type AliasDef struct {
	Name string
	Type string
}

// TypeName returns the registered name.
func (d StructDef) TypeName() string { return d.Name }

// TypeName returns the registered name.
func (d EnumDef) TypeName() string { return d.Name }

// TypeName returns the registered name.
func (d AliasDef) TypeName() string { return d.Name }

func (StructDef) typeDef() {}
func (EnumDef) typeDef()   {}
func (AliasDef) typeDef()  {}

type kind uint8

const (
	kindU8 kind = iota + 1
	kindU16
	kindU32
	kindU64
	kindU128
	kindBool
	kindBytes
	kindAccountID
	kindStruct
	kindEnum
	kindVec
	kindOption
	kindCompact
)

// node is a resolved type. Struct and enum nodes are shared by every reference to them.
type node struct {
	kind     kind
	name     string
	fields   []fieldNode
	variants []string
	elem     *node
}

type fieldNode struct {
	name string
	typ  *node
}

func (n *node) isUnsigned() bool {
	switch n.kind {
	case kindU8, kindU16, kindU32, kindU64, kindU128:
		return true
	default:
		return false
	}
}

// width returns the byte width of fixed-size unsigned integers.
func (n *node) width() int {
	switch n.kind {
	case kindU8:
		return 1
	case kindU16:
		return 2
	case kindU32:
		return 4
	case kindU64:
		return 8
	case kindU128:
		return 16
	default:
		return 0
	}
}

var primitives = map[string]kind{
	"u8":        kindU8,
	"u16":       kindU16,
	"u32":       kindU32,
	"u64":       kindU64,
	"u128":      kindU128,
	"bool":      kindBool,
	"Bytes":     kindBytes,
	"AccountId": kindAccountID,
}

// builtinAliases mirror the legacy runtime preset names used by custom records.
var builtinAliases = []AliasDef{
	{Name: "Balance", Type: "u128"},
	{Name: "BlockNumber", Type: "u32"},
	{Name: "Index", Type: "u32"},
	{Name: "AccountId32", Type: "AccountId"},
	{Name: "PeerId", Type: "Vec<u8>"},
	{Name: "Text", Type: "Bytes"},
}
