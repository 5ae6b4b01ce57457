package dataclass

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for data class lifecycle events.
// Rendering and redaction emit nothing.
var (
	SignalClassDefined   = capitan.NewSignal("dataclass.class.defined", "Data class created")
	SignalRuleRegistered = capitan.NewSignal("dataclass.rule.registered", "Redaction rule registration attempted")
)

// Keys for typed event data.
var (
	KeyClassName = capitan.NewStringKey("class_name")
	KeyBehavior  = capitan.NewStringKey("behavior")
	KeyTypeName  = capitan.NewStringKey("type_name")
	KeyError     = capitan.NewErrorKey("error")
)

// emitClassDefined emits an event when a data class is created.
func emitClassDefined(ctx context.Context, name string, behavior DisplayBehavior) {
	capitan.Emit(ctx, SignalClassDefined,
		KeyClassName.Field(name),
		KeyBehavior.Field(behavior.String()),
	)
}

// emitRuleRegistered emits an event when a rule registration finishes.
func emitRuleRegistered(ctx context.Context, typeName string, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRuleRegistered, fields...)
	} else {
		capitan.Emit(ctx, SignalRuleRegistered, fields...)
	}
}
