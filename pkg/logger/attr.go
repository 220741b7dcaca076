package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the validated field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records the rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// FaultID records the identifier of an execution fault under the key "fault_id".
func FaultID(id string) slog.Attr {
	return slog.String("fault_id", id)
}

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
