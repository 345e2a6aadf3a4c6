package registry

// Shared accessors for validated argument bags. By the time a handler runs,
// presence and primitive type of declared arguments have been checked, so
// these helpers only need to pick values out and apply defaults.

// StringArg returns a string argument. Empty string when absent.
func StringArg(args map[string]interface{}, name string) string {
	value, _ := args[name].(string)
	return value
}

// StringArgOr returns a string argument or the given default when absent
// or empty.
func StringArgOr(args map[string]interface{}, name, fallback string) string {
	if value, ok := args[name].(string); ok && value != "" {
		return value
	}
	return fallback
}

// IntArg returns a numeric argument as int. JSON numbers decode as
// float64, so both forms are accepted. Zero when absent.
func IntArg(args map[string]interface{}, name string) int {
	switch value := args[name].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case int64:
		return int(value)
	default:
		return 0
	}
}

// BoolArg returns a boolean argument. False when absent.
func BoolArg(args map[string]interface{}, name string) bool {
	value, _ := args[name].(bool)
	return value
}

// ObjectArg returns an object argument. Nil when absent.
func ObjectArg(args map[string]interface{}, name string) map[string]interface{} {
	value, _ := args[name].(map[string]interface{})
	return value
}

// ArrayArg returns an array argument. Nil when absent.
func ArrayArg(args map[string]interface{}, name string) []interface{} {
	value, _ := args[name].([]interface{})
	return value
}
