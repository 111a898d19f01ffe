package cliutil

import (
	"bytes"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d schemas", "Registry", 3)
	if got := buf.String(); got != "Registry: 3 schemas" {
		t.Errorf("Writef() = %q", got)
	}
}

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer
	WriteList(&buf, "Written", []string{"a.yaml", "a.json"})
	want := "Written (2):\n  - a.yaml\n  - a.json\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteList() = %q, want %q", got, want)
	}

	buf.Reset()
	WriteList(&buf, "Empty", nil)
	if buf.Len() != 0 {
		t.Errorf("WriteList() with no items wrote %q", buf.String())
	}
}
