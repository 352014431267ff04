// Package spirverr defines the error kinds shared across the codec, IR
// builder, and control-flow analysis packages.
//
// Each kind is a plain struct implementing error, in the style of the
// ValidationError naga uses in its own IR validator: callers that
// need structured detail use errors.As, everyone else just prints it.
package spirverr

import "fmt"

// MalformedHeader is returned when a binary stream's magic word matches
// neither the canonical nor byte-swapped SPIR-V magic number.
type MalformedHeader struct {
	Got uint32
}

func (e *MalformedHeader) Error() string {
	return fmt.Sprintf("spirv: malformed header: magic word 0x%08x is not a recognized SPIR-V magic", e.Got)
}

// TruncatedStream is returned when an instruction's declared word count
// exceeds the words remaining in the stream.
type TruncatedStream struct {
	Offset    int // word offset of the instruction header
	WordCount int // declared word count
	Remaining int // words actually remaining
}

func (e *TruncatedStream) Error() string {
	return fmt.Sprintf("spirv: truncated stream at word %d: instruction declares %d words but only %d remain", e.Offset, e.WordCount, e.Remaining)
}

// UnknownOpcode is returned when the grammar table has no entry for an
// opcode encountered during strict decoding.
type UnknownOpcode struct {
	Opcode uint16
}

func (e *UnknownOpcode) Error() string {
	return fmt.Sprintf("spirv: unknown opcode %d", e.Opcode)
}

// UnknownOperandKind is returned when a grammar entry references an operand
// kind with no registered parser/printer.
type UnknownOperandKind struct {
	Opcode uint16
	Kind   string
}

func (e *UnknownOperandKind) Error() string {
	return fmt.Sprintf("spirv: opcode %d: unknown operand kind %q", e.Opcode, e.Kind)
}

// InvariantViolation is returned when a data-model invariant from the
// specification (e.g. every block ends with a terminator) is violated.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return "spirv: invariant violation: " + e.Detail
}

// NoEntry is returned by dominator/structural analysis when a graph has no
// vertex with zero in-degree reachable as the designated entry.
type NoEntry struct{}

func (e *NoEntry) Error() string { return "spirv: graph has no entry vertex" }

// MultipleEntries is returned when a graph has more than one candidate
// entry vertex and the caller did not disambiguate.
type MultipleEntries struct {
	Count int
}

func (e *MultipleEntries) Error() string {
	return fmt.Sprintf("spirv: graph has %d candidate entry vertices, expected exactly one", e.Count)
}

// UnreducibleRegion is returned when structural analysis ends with no root
// region, which happens only for a graph with no blocks. A residual that no
// pattern matches is collapsed into an Improper or Proper region instead.
type UnreducibleRegion struct {
	Detail string
	// Residual is a dump of the graph at the point progress stalled,
	// rendered as "v -> [succ, succ, ...]" lines, one per vertex.
	Residual string
}

func (e *UnreducibleRegion) Error() string {
	return fmt.Sprintf("spirv: unreducible region: %s\n%s", e.Detail, e.Residual)
}

// ValidationError wraps the external validator's rejection of an assembled
// binary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "spirv: validation failed: " + e.Message
}
