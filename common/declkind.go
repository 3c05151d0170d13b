package common

// DeclarationKind tags the kind of thing a name was bound by, purely
// for use in diagnostic messages.
type DeclarationKind uint8

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindRecPrim
	DeclarationKindLibraryVariable
	DeclarationKindLibraryType
	DeclarationKindParameter
	DeclarationKindField
	DeclarationKindTransition
	DeclarationKindLocal
	DeclarationKindPatternBinder
	DeclarationKindMessageField
)

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindRecPrim:
		return "recursion primitive"
	case DeclarationKindLibraryVariable:
		return "library variable"
	case DeclarationKindLibraryType:
		return "library type"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindField:
		return "field"
	case DeclarationKindTransition:
		return "transition"
	case DeclarationKindLocal:
		return "local variable"
	case DeclarationKindPatternBinder:
		return "pattern binder"
	case DeclarationKindMessageField:
		return "message field"
	default:
		return "declaration"
	}
}
