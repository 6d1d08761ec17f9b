package config

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestExitf_ExitsWithCode1 uses the subprocess pattern because os.Exit cannot
// be intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: something broke") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: something broke", string(out))
	}
}

func TestExitfWritesMessage(t *testing.T) {
	code := stubExit(t)

	var buf bytes.Buffer
	exitf(&buf, "listen on %s", "localhost:1")
	if buf.String() != "listen on localhost:1\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if *code != 1 {
		t.Fatalf("expected exit code 1, got %d", *code)
	}
}

func TestExitOnErrorIgnoresNil(t *testing.T) {
	code := stubExit(t)

	ExitOnError(nil, "parse flags")
	if *code != -1 {
		t.Fatalf("expected no exit, got code %d", *code)
	}
}

func TestExitOnErrorExits(t *testing.T) {
	code := stubExit(t)

	ExitOnError(errors.New("boom"), "parse flags")
	if *code != 1 {
		t.Fatalf("expected exit code 1, got %d", *code)
	}
}

func stubExit(t *testing.T) *int {
	t.Helper()
	code := -1
	previous := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = previous })
	return &code
}
