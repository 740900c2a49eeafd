// Package warn collects advisory, non-fatal notices raised while lowering
// a schema document. Warnings never stop the generator — they flag
// behavior that the spec calls out as deliberate-but-surprising (the
// global response table silently overwriting a duplicate name) or lossy
// (falling back to opaque JSON for a shape combination with no
// specialization).
package warn

import "fmt"

// Code identifies a specific kind of warning. Compare against the Code*
// constants for type-safe checks.
type Code string

const (
	// CodeResponseOverwrite indicates a later response declaration under an
	// existing global name replaced the earlier one (§4.6, open question).
	CodeResponseOverwrite Code = "RESPONSE_NAME_OVERWRITE"

	// CodeModuleDedupe indicates two module-local declarations sharing a
	// name were merged because they were structurally identical (§4.6).
	CodeModuleDedupe Code = "MODULE_NAME_DEDUPE"

	// CodeModuleOverwrite indicates a later module-local declaration under
	// an existing name replaced the earlier one, under
	// ModuleCollisionPolicy: overwrite (§4.6).
	CodeModuleOverwrite Code = "MODULE_NAME_OVERWRITE"

	// CodeResponseDedupe indicates two global response declarations
	// sharing a name were merged because they were structurally
	// identical, under ResponseCollisionPolicy: dedupe (§4.6).
	CodeResponseDedupe Code = "RESPONSE_NAME_DEDUPE"

	// CodeOpaqueFallback indicates a shape combination had no
	// specialization and lowered to opaque JSON (§4.2, §9 design notes).
	CodeOpaqueFallback Code = "OPAQUE_JSON_FALLBACK"
)

// Warning is a single non-fatal notice.
type Warning struct {
	code    Code
	path    string
	message string
}

// Code returns the warning identifier.
func (w Warning) Code() Code { return w.code }

// Path returns the dotted prefix-stack trail to the affected schema node.
func (w Warning) Path() string { return w.path }

// Message returns a human-readable description.
func (w Warning) Message() string { return w.message }

// String returns a formatted representation.
func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s: %s", w.code, w.path, w.message)
}

// New creates a Warning with the given code, schema path, and message.
func New(code Code, path, message string) Warning {
	return Warning{code: code, path: path, message: message}
}

// Warnings is an ordered collection of Warning with helper methods.
type Warnings []Warning

// Has returns true if any warning matches the given code.
func (ws Warnings) Has(code Code) bool {
	for _, w := range ws {
		if w.code == code {
			return true
		}
	}

	return false
}

// Append adds a warning to the collection.
func (ws *Warnings) Append(w Warning) {
	*ws = append(*ws, w)
}
