package shader

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildErrorMessage(t *testing.T) {
	tests := []struct {
		stage string
		log   string
	}{
		{"vertex", "0:3: 'vec9' : undeclared identifier"},
		{"fragment", "0:1: '' : syntax error"},
		{"link", "attribute aCol not found"},
	}

	for _, tt := range tests {
		err := &BuildError{Stage: tt.stage, Log: tt.log}
		msg := err.Error()
		if !strings.Contains(msg, tt.stage) {
			t.Errorf("error message should name the %s stage, got %q", tt.stage, msg)
		}
		if !strings.Contains(msg, tt.log) {
			t.Errorf("error message should carry the driver log, got %q", msg)
		}
	}
}

func TestBuildErrorAsTarget(t *testing.T) {
	var err error = &BuildError{Stage: "vertex", Log: "boom"}

	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Fatal("errors.As should unwrap *BuildError")
	}
	if buildErr.Stage != "vertex" {
		t.Errorf("expected stage vertex, got %s", buildErr.Stage)
	}
}
