// Package types is the semantic type grammar reconstructed by the
// checker: primitive types, maps, arrows, algebraic data types,
// universal quantification and type variables. Nothing here knows
// about the checker's environment or the ADT/builtin registries, those
// live in package checker, which is the only consumer that needs them.
package types

import "fmt"

// TypeID is a canonical string identity for a type, used for map keys
// and as a cheap first-pass equality check before falling back to the
// alpha-aware Equal.
type TypeID string

// Type is implemented by every member of the type grammar.
type Type interface {
	fmt.Stringer
	ID() TypeID
	// Equal reports nominal equivalence, modulo alpha-renaming of
	// PolyFun-bound type variables.
	Equal(other Type) bool
	isType()
}

// --- primitive types ---

// ByStr20Type is the fixed-width address byte-string type.
type ByStr20Type struct{}

func (ByStr20Type) isType()          {}
func (ByStr20Type) String() string   { return "ByStr20" }
func (ByStr20Type) ID() TypeID       { return "ByStr20" }
func (t ByStr20Type) Equal(o Type) bool {
	_, ok := o.(ByStr20Type)
	return ok
}

// ByStrNType is a sized byte-string of exactly N bytes.
type ByStrNType struct {
	N int
}

func (ByStrNType) isType() {}
func (t ByStrNType) String() string {
	return fmt.Sprintf("ByStr%d", t.N)
}
func (t ByStrNType) ID() TypeID { return TypeID(t.String()) }
func (t ByStrNType) Equal(o Type) bool {
	other, ok := o.(ByStrNType)
	return ok && other.N == t.N
}

// IntType is a signed integer of width in {32,64,128,256}.
type IntType struct {
	Width int
}

func (IntType) isType()        {}
func (t IntType) String() string { return fmt.Sprintf("Int%d", t.Width) }
func (t IntType) ID() TypeID     { return TypeID(t.String()) }
func (t IntType) Equal(o Type) bool {
	other, ok := o.(IntType)
	return ok && other.Width == t.Width
}

// UintType is an unsigned integer of width in {32,64,128,256}.
type UintType struct {
	Width int
}

func (UintType) isType()        {}
func (t UintType) String() string { return fmt.Sprintf("Uint%d", t.Width) }
func (t UintType) ID() TypeID     { return TypeID(t.String()) }
func (t UintType) Equal(o Type) bool {
	other, ok := o.(UintType)
	return ok && other.Width == t.Width
}

// BNumType is the block-number type.
type BNumType struct{}

func (BNumType) isType()          {}
func (BNumType) String() string   { return "BNum" }
func (BNumType) ID() TypeID       { return "BNum" }
func (BNumType) Equal(o Type) bool {
	_, ok := o.(BNumType)
	return ok
}

// StringType is the string type.
type StringType struct{}

func (StringType) isType()          {}
func (StringType) String() string   { return "String" }
func (StringType) ID() TypeID       { return "String" }
func (StringType) Equal(o Type) bool {
	_, ok := o.(StringType)
	return ok
}

// MessageType is the type of an outgoing message.
type MessageType struct{}

func (MessageType) isType()          {}
func (MessageType) String() string   { return "Message" }
func (MessageType) ID() TypeID       { return "Message" }
func (MessageType) Equal(o Type) bool {
	_, ok := o.(MessageType)
	return ok
}

// EventType is the type of an emitted event.
type EventType struct{}

func (EventType) isType()          {}
func (EventType) String() string   { return "Event" }
func (EventType) ID() TypeID       { return "Event" }
func (EventType) Equal(o Type) bool {
	_, ok := o.(EventType)
	return ok
}

// --- compound types ---

// MapType associates a primitive key type with an arbitrary storable
// value type; the key must be primitive.
type MapType struct {
	Key   Type
	Value Type
}

func (MapType) isType() {}
func (t MapType) String() string {
	return fmt.Sprintf("Map (%s) (%s)", t.Key, t.Value)
}
func (t MapType) ID() TypeID { return TypeID(t.String()) }
func (t MapType) Equal(o Type) bool {
	other, ok := o.(MapType)
	return ok && t.Key.Equal(other.Key) && t.Value.Equal(other.Value)
}

// FunType is a monomorphic arrow type.
type FunType struct {
	Arg    Type
	Result Type
}

func (FunType) isType() {}
func (t FunType) String() string {
	return fmt.Sprintf("(%s -> %s)", t.Arg, t.Result)
}
func (t FunType) ID() TypeID { return TypeID(t.String()) }
func (t FunType) Equal(o Type) bool {
	other, ok := o.(FunType)
	return ok && t.Arg.Equal(other.Arg) && t.Result.Equal(other.Result)
}

// ADT is a named algebraic type instantiated with positional type
// arguments, e.g. ADT{"Option", []Type{IntType{32}}} for `Option Int32`.
type ADT struct {
	Name string
	Args []Type
}

func (ADT) isType() {}
func (t ADT) String() string {
	s := t.Name
	for _, a := range t.Args {
		s += " " + a.String()
	}
	return s
}
func (t ADT) ID() TypeID { return TypeID(t.String()) }
func (t ADT) Equal(o Type) bool {
	other, ok := o.(ADT)
	if !ok || other.Name != t.Name || len(other.Args) != len(t.Args) {
		return false
	}
	for i, a := range t.Args {
		if !a.Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// TypeVar is a type variable, free only inside a surrounding PolyFun.
type TypeVar struct {
	Name string
}

func (TypeVar) isType()        {}
func (t TypeVar) String() string { return "'" + t.Name }
func (t TypeVar) ID() TypeID     { return TypeID(t.String()) }
func (t TypeVar) Equal(o Type) bool {
	other, ok := o.(TypeVar)
	return ok && other.Name == t.Name
}

// PolyFun is universal quantification over one type variable; nesting
// PolyFun expresses multi-parameter polymorphism.
type PolyFun struct {
	TypeVar string
	Body    Type
}

func (PolyFun) isType() {}
func (t PolyFun) String() string {
	return fmt.Sprintf("forall '%s. %s", t.TypeVar, t.Body)
}
func (t PolyFun) ID() TypeID { return TypeID(t.String()) }
func (t PolyFun) Equal(o Type) bool {
	other, ok := o.(PolyFun)
	if !ok {
		return false
	}
	return alphaEqual(t, other, map[string]string{})
}

// alphaEqual compares two types for equivalence modulo consistent
// renaming of PolyFun-bound type variables. renaming maps a bound
// variable name on the left to the name it is paired with on the right.
func alphaEqual(a, b Type, renaming map[string]string) bool {
	switch at := a.(type) {
	case PolyFun:
		bt, ok := b.(PolyFun)
		if !ok {
			return false
		}
		child := make(map[string]string, len(renaming)+1)
		for k, v := range renaming {
			child[k] = v
		}
		child[at.TypeVar] = bt.TypeVar
		return alphaEqual(at.Body, bt.Body, child)
	case TypeVar:
		bt, ok := b.(TypeVar)
		if !ok {
			return false
		}
		if renamed, bound := renaming[at.Name]; bound {
			return renamed == bt.Name
		}
		return at.Name == bt.Name
	case FunType:
		bt, ok := b.(FunType)
		return ok && alphaEqual(at.Arg, bt.Arg, renaming) && alphaEqual(at.Result, bt.Result, renaming)
	case MapType:
		bt, ok := b.(MapType)
		return ok && alphaEqual(at.Key, bt.Key, renaming) && alphaEqual(at.Value, bt.Value, renaming)
	case ADT:
		bt, ok := b.(ADT)
		if !ok || at.Name != bt.Name || len(at.Args) != len(bt.Args) {
			return false
		}
		for i := range at.Args {
			if !alphaEqual(at.Args[i], bt.Args[i], renaming) {
				return false
			}
		}
		return true
	default:
		return a.Equal(b)
	}
}

// Equivalent reports whether two types are equivalent up to
// alpha-renaming, without the error wrapping (callers in package
// checker attach the TypeMismatchError).
func Equivalent(a, b Type) bool {
	return alphaEqual(a, b, map[string]string{})
}
