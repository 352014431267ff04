package validator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/spirvcore/spirverr"
)

// scriptFixture writes an executable shell script that exits with the given
// code, optionally printing msg to stderr first.
func scriptFixture(t *testing.T, code int, msg string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-validator.sh")
	body := "#!/bin/sh\n"
	if msg != "" {
		body += "echo '" + msg + "' 1>&2\n"
	}
	body += "exit " + string(rune('0'+code)) + "\n"
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunPassesOnZeroExit(t *testing.T) {
	path := scriptFixture(t, 0, "")
	res, err := Run(context.Background(), path, []byte{0x03, 0x02, 0x23, 0x07})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Passed {
		t.Fatalf("expected Passed, got %+v", res)
	}
	if res.AsValidationError() != nil {
		t.Error("expected AsValidationError to be nil on success")
	}
}

func TestRunFailsOnNonZeroExit(t *testing.T) {
	path := scriptFixture(t, 1, "invalid opcode at word 12")
	res, err := Run(context.Background(), path, []byte{0x03, 0x02, 0x23, 0x07})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Passed {
		t.Fatal("expected validation failure")
	}
	if res.Message == "" {
		t.Error("expected captured stderr message")
	}

	err = res.AsValidationError()
	var ve *spirverr.ValidationError
	if err == nil {
		t.Fatal("expected AsValidationError to return an error")
	}
	if ok := asValidationError(err, &ve); !ok {
		t.Fatalf("expected *spirverr.ValidationError, got %T", err)
	}
}

func asValidationError(err error, target **spirverr.ValidationError) bool {
	ve, ok := err.(*spirverr.ValidationError)
	if ok {
		*target = ve
	}
	return ok
}

func TestRunReportsExecutableNotFound(t *testing.T) {
	if _, err := Run(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"), nil); err == nil {
		t.Fatal("expected error for missing validator binary")
	}
}
