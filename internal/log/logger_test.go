package log

import (
	"bytes"
	"testing"
)

func TestPrintf_Disabled(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Enabled: false, W: &buf}
	l.Printf("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
}

func TestPrintf_EnabledWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Enabled: true, Prefix: "prosegrade", W: &buf}
	l.Printf("scored %d files", 3)
	if got, want := buf.String(), "prosegrade: scored 3 files\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
