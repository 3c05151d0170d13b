package checker

import (
	"log"

	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/types"
)

// ConstructorInfo describes one ADT constructor as the external ADT
// registry reports it: its declaring ADT's name, the ADT's positional
// type-parameter names (as they appear, as TypeVars, inside
// ArgTypeSchemas), and the constructor's own argument-type schemas.
type ConstructorInfo struct {
	ADTName        string
	ADTTypeParams  []string
	ArgTypeSchemas []types.Type
}

// ADTTypeInfo describes an ADT declaration itself, independent of any
// one constructor. Needed by is_wf_type to validate a named ADT type
// occurring in a type annotation.
type ADTTypeInfo struct {
	Name       string
	TypeParams []string
}

// ADTRegistry is the external collaborator that resolves constructor
// names to arity/argument-type information, and ADT names to their
// declared arity. The checker never constructs one itself; package
// stdlib provides a concrete implementation.
type ADTRegistry interface {
	LookupConstructor(name string) (ConstructorInfo, bool)
	LookupADT(name string) (ADTTypeInfo, bool)
}

// BuiltinRegistry resolves an operator name plus argument types to its
// parameter types and result type.
type BuiltinRegistry interface {
	FindBuiltinOp(op string, argTypes []types.Type) (paramTypes []types.Type, resultType types.Type, ok bool)
}

// BlockchainRegistry is the fixed mapping of well-known read-only names,
// e.g. BLOCKNUMBER -> BNum.
type BlockchainRegistry interface {
	LookupField(name string) (types.Type, bool)
}

// MessageFieldPolicy supplies the mandatory-field contract as an
// injected dependency: the checker must not hard-code which fields are
// mandatory or what distinguishes a Message from an Event.
type MessageFieldPolicy interface {
	// Classify decides, from the set of field names present in a
	// message literal, whether it denotes a Message or an Event, or
	// reports ok=false if the fields are ambiguous (neither header set
	// is present).
	Classify(fieldNames map[string]bool) (isMessage bool, isEvent bool, ok bool)
	// MandatoryFields returns the required (name -> exact type) map for
	// a Message or an Event.
	MandatoryFields(isMessage bool) map[string]types.Type
	types.SerializationPolicy
}

// ImplicitParams is the host-injected-identifier provider: implicit
// contract parameters, implicit transition parameters, and the
// name/type of the always-present balance field.
type ImplicitParams interface {
	ContractParams() []ast.Param
	TransitionParams() []ast.Param
	BalanceField() (name string, ty types.Type)
	// ReadOnlyFields lists field names Store may never target, in
	// addition to the balance field's own name.
	ReadOnlyFields() []string
}

// Config bundles the external collaborators a Checker needs, following
// a handler-bundle idiom: policy and lookup behavior are injected
// rather than compiled in.
type Config struct {
	ADTs       ADTRegistry
	Builtins   BuiltinRegistry
	Blockchain BlockchainRegistry
	Messages   MessageFieldPolicy
	Implicits  ImplicitParams

	// Logger, if non-nil, receives phase-transition trace lines from
	// ModuleDriver. It never influences control flow or output content:
	// the checker's (typed AST, error list) result is identical whether
	// or not a Logger is attached.
	Logger *log.Logger
}
