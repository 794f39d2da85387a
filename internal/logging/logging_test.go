package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_Quiet(t *testing.T) {
	var buf bytes.Buffer
	logger := New(false, &buf)

	logger.Debug("phase", zap.String("phase", PhaseLoading))
	logger.Info("loaded")

	if buf.Len() != 0 {
		t.Errorf("non-verbose logger wrote %q", buf.String())
	}
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(true, &buf)

	logger.Debug("phase", zap.String("phase", PhaseValidating))
	_ = logger.Sync()

	got := buf.String()
	if !strings.Contains(got, "DEBUG") {
		t.Errorf("expected DEBUG level in %q", got)
	}
	if !strings.Contains(got, `"phase": "validating"`) {
		t.Errorf("expected phase field in %q", got)
	}
}

func TestNew_NilWriter(t *testing.T) {
	logger := New(true, nil)
	// must not panic
	logger.Debug("ignored")
}
