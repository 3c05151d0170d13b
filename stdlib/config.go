package stdlib

import (
	"log"

	"github.com/vela-lang/vela/checker"
)

// NewConfig assembles the default host: the fixed ADT/builtin/
// blockchain registries and message/implicit policies defined in this
// package. logger may be nil.
func NewConfig(logger *log.Logger) checker.Config {
	return checker.Config{
		ADTs:       NewADTs(),
		Builtins:   NewBuiltins(),
		Blockchain: NewBlockchain(),
		Messages:   NewMessagePolicy(),
		Implicits:  NewImplicits(),
		Logger:     logger,
	}
}
