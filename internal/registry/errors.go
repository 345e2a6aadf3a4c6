package registry

import "fmt"

// UnknownToolError indicates a dispatch for a name no module registered.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// MissingArgumentsError indicates a dispatch with no argument bag at all.
type MissingArgumentsError struct {
	Tool string
}

func (e *MissingArgumentsError) Error() string {
	return fmt.Sprintf("tool %s called without arguments", e.Tool)
}

// ValidationError names the first argument that failed presence or
// primitive-type validation. It is always raised before any network call.
type ValidationError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tool %s: invalid argument %q: %s", e.Tool, e.Field, e.Reason)
}
