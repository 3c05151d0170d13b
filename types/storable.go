package types

// SerializationPolicy is the injected host policy consulted by
// IsSerializable: serializability additionally excludes Map from
// message payloads per the host policy. Different hosts may relax or
// tighten this; the checker never hard-codes it.
type SerializationPolicy interface {
	AllowMapInPayload() bool
}

// DefaultSerializationPolicy matches the Scilla-shaped host contract:
// maps may be stored in fields, but never sent as message/event
// payloads.
type DefaultSerializationPolicy struct{}

func (DefaultSerializationPolicy) AllowMapInPayload() bool { return false }

// IsStorable reports whether t may appear as a contract field's
// declared type: Message, Event, PolyFun, FunType and a bare TypeVar are
// never storable; everything else is storable
// if every type parameter is storable.
func IsStorable(t Type) bool {
	switch tt := t.(type) {
	case MessageType, EventType, PolyFun, FunType, TypeVar:
		return false
	case MapType:
		// the key must already be primitive (invariant 6, enforced at
		// construction time by the checker); storability only concerns
		// the value.
		return IsStorable(tt.Value)
	case ADT:
		for _, arg := range tt.Args {
			if !IsStorable(arg) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// IsSerializable reports whether t may appear as a transition
// parameter's type or be sent inside a message payload: a strict subset
// of storable, additionally excluding Map unless the host policy allows
// it.
func IsSerializable(t Type, policy SerializationPolicy) bool {
	if !IsStorable(t) {
		return false
	}
	switch tt := t.(type) {
	case MapType:
		if policy == nil || !policy.AllowMapInPayload() {
			return false
		}
		return IsSerializable(tt.Value, policy)
	case ADT:
		for _, arg := range tt.Args {
			if !IsSerializable(arg, policy) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// IsPrimitive reports whether t may be used as a MapType key.
func IsPrimitive(t Type) bool {
	switch t.(type) {
	case ByStr20Type, ByStrNType, IntType, UintType, BNumType, StringType:
		return true
	default:
		return false
	}
}
