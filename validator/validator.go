// Package validator bridges to an external SPIR-V validator binary
// (spirv-val or equivalent), running it as a subprocess over an assembled
// module's bytes and classifying its exit status.
package validator

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/gogpu/spirvcore/spirverr"
)

// Result is the outcome of one validator invocation.
type Result struct {
	Passed  bool
	Message string // stderr output, populated only when Passed is false
}

// Run pipes binary to validatorPath's stdin and waits for it to exit,
// reading SPIR-V from a stream the way real validators expect (spirv-val
// accepts a binary module on stdin with no flags needed). Exit code 0 is
// success; any other exit is reported as a failed Result with stderr as
// Message. Failure to start the process is returned as an error, with a nil
// Result.
func Run(ctx context.Context, validatorPath string, binary []byte) (*Result, error) {
	cmd := exec.CommandContext(ctx, validatorPath)
	cmd.Stdin = bytes.NewReader(binary)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return &Result{Passed: true}, nil
	}

	if _, ok := err.(*exec.ExitError); ok {
		return &Result{Passed: false, Message: stderr.String()}, nil
	}
	return nil, err
}

// AsValidationError converts a failed Result into the package-wide
// validation error type, for callers that want a single error return.
func (r *Result) AsValidationError() error {
	if r.Passed {
		return nil
	}
	return &spirverr.ValidationError{Message: r.Message}
}
