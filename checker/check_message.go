package checker

import (
	"github.com/vela-lang/vela/ast"
	"github.com/vela-lang/vela/common"
	"github.com/vela-lang/vela/types"
)

// typeMessageExpr types a Message or Event literal: which one it is
// is decided by the field names present, mandatory
// header fields must have their exact required type, and every other
// field's payload must be serializable.
func (c *Checker) typeMessageExpr(env *TypeEnv, e *ast.MessageExpr) (types.Type, error) {
	fieldNames := make(map[string]bool, len(e.Fields))
	for _, f := range e.Fields {
		fieldNames[f.Name] = true
	}

	msgTy, isMessage, err := c.getMsgEvntType(fieldNames, e.Loc())
	if err != nil {
		return nil, err
	}
	mandatory := c.config.Messages.MandatoryFields(isMessage)

	for i := range e.Fields {
		field := &e.Fields[i]

		payloadTy, err := c.typeMessagePayload(env, field)
		if err != nil {
			return nil, err
		}

		if expected, required := mandatory[field.Name]; required {
			if !types.Equivalent(expected, payloadTy) {
				return nil, &BadMessageFieldError{
					Field:    field.Name,
					Expected: expected,
					Got:      payloadTy,
					L:        e.Loc(),
				}
			}
			continue
		}

		if !types.IsSerializable(payloadTy, c.config.Messages) {
			return nil, &NonSerializableError{Type: payloadTy, Kind: common.DeclarationKindMessageField, L: e.Loc()}
		}

		if lit, ok := field.Payload.(ast.MLit); ok {
			if s, ok := lit.Value.(types.StringLiteral); ok && !types.StringLiteralWithinLimit(s.Value) {
				return nil, &NonSerializableError{Type: types.StringType{}, Kind: common.DeclarationKindMessageField, L: e.Loc()}
			}
		}
	}

	return msgTy, nil
}

// typeMessagePayload types one field's payload, an MTag, MLit or MVar,
// and, for MVar, annotates its identifier.
func (c *Checker) typeMessagePayload(env *TypeEnv, field *ast.MessageField) (types.Type, error) {
	switch p := field.Payload.(type) {
	case ast.MTag:
		return types.StringType{}, nil
	case ast.MLit:
		return types.LiteralType(p.Value), nil
	case ast.MVar:
		qt, err := env.ResolveT(p.Ident.Name, p.Ident.Loc())
		if err != nil {
			return nil, err
		}
		p.Ident.SetAnnotation(qt)
		field.Payload = p
		return qt.Type, nil
	default:
		return nil, &NotWellFormedError{Type: types.MessageType{}}
	}
}
