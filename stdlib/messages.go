package stdlib

import "github.com/vela-lang/vela/types"

// MessagePolicy implements checker.MessageFieldPolicy: it decides
// whether a message literal's field-name set denotes a Message or an
// Event, what fields are mandatory for each, and the default
// serialization policy (no maps in payloads).
type MessagePolicy struct {
	types.DefaultSerializationPolicy
}

func NewMessagePolicy() MessagePolicy { return MessagePolicy{} }

var messageMandatory = map[string]types.Type{
	"_tag":       types.StringType{},
	"_recipient": types.ByStr20Type{},
	"_amount":    types.UintType{Width: 128},
}

var eventMandatory = map[string]types.Type{
	"_eventname": types.StringType{},
}

// Classify decides message-vs-event: a literal is an Event if it
// carries _eventname, a Message if it carries all three of
// _tag/_recipient/_amount, and ambiguous otherwise.
func (MessagePolicy) Classify(fieldNames map[string]bool) (isMessage bool, isEvent bool, ok bool) {
	_, hasEventName := fieldNames["_eventname"]
	if hasEventName {
		return false, true, true
	}
	_, hasTag := fieldNames["_tag"]
	_, hasRecipient := fieldNames["_recipient"]
	_, hasAmount := fieldNames["_amount"]
	if hasTag && hasRecipient && hasAmount {
		return true, false, true
	}
	return false, false, false
}

func (MessagePolicy) MandatoryFields(isMessage bool) map[string]types.Type {
	if isMessage {
		return messageMandatory
	}
	return eventMandatory
}
