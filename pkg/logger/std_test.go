package logger

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestStdDebugGate(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := &Std{}
	l.Debugf("hidden %d", 1)
	l.Warnf("shown %d", 2)
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "WARN shown 2") {
		t.Fatalf("unexpected output %q", out)
	}

	buf.Reset()
	l.Debug = true
	l.Debugf("visible %d", 3)
	if out := buf.String(); !strings.Contains(out, "DEBUG visible 3") {
		t.Fatalf("unexpected output %q", out)
	}
}
