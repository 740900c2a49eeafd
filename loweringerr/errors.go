// Package loweringerr defines the two fatal error families the lowering
// engine can raise: malformed/unrecognized input, and schema shapes that
// are valid but not yet supported. Neither is recoverable; the generator
// is batch-oriented and deterministic, so there is no retry path.
package loweringerr

import "fmt"

// InputError indicates a malformed schema document, an unknown primitive
// type token, or a shape combination the classifier tables don't cover.
type InputError struct {
	// Path is the dotted prefix-stack trail to the offending schema node,
	// e.g. "GetArtifactResponse.GetArtifactResponseWorkflowRun".
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("input error: %v", e.Err)
	}

	return fmt.Sprintf("input error at %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// NewInput wraps err as an InputError at the given path.
func NewInput(path string, err error) *InputError {
	return &InputError{Path: path, Err: err}
}

// NotImplementedError indicates a body-parameter descriptor outside the
// supported vocabulary (§4.2 body-parameter dialect).
type NotImplementedError struct {
	Path       string
	Descriptor string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not yet implemented at %s: body parameter type %q", e.Path, e.Descriptor)
}

// NewNotImplemented reports an unsupported body-parameter descriptor.
func NewNotImplemented(path, descriptor string) *NotImplementedError {
	return &NotImplementedError{Path: path, Descriptor: descriptor}
}
