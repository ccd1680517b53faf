package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func TestInit_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	Init("cargo-php", &buf, false)

	log.Debug().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged without verbose: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestInit_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := Init("cargo-php", &buf, true)

	logger.Debug().Str("stage", "build").Msg("starting")

	out := buf.String()
	if !strings.Contains(out, "starting") || !strings.Contains(out, "build") {
		t.Errorf("debug output = %q", out)
	}
}
