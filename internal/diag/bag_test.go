package diag

import (
	"bytes"
	"strings"
	"testing"

	"cinder/internal/source"
)

func TestBagReport(t *testing.T) {
	b := NewBag(8)
	if !b.Report(nil, SevError, source.Span{}, "boom") {
		t.Fatal("Report returned false under capacity")
	}
	if !b.HadError() {
		t.Error("HadError should be true after an error-severity report")
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestBagReportFullReturnsFalse(t *testing.T) {
	b := NewBag(1)
	if !b.Report(nil, SevWarning, source.Span{}, "first") {
		t.Fatal("first Report should succeed")
	}
	if b.Report(nil, SevWarning, source.Span{}, "second") {
		t.Error("Report should return false once the bag is full")
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestDumpErrorsFormat(t *testing.T) {
	b := NewBag(8)
	b.Report(nil, SevError, source.Span{}, "undeclared identifier: x")

	var buf bytes.Buffer
	b.DumpErrors(&buf)

	got := strings.TrimRight(buf.String(), "\n")
	want := "ERROR: undeclared identifier: x at line 0"
	if got != want {
		t.Errorf("DumpErrors output = %q, want %q", got, want)
	}
}

func TestDumpErrorsInsertionOrder(t *testing.T) {
	b := NewBag(8)
	b.Report(nil, SevWarning, source.Span{}, "second")
	b.Report(nil, SevError, source.Span{}, "first")

	var buf bytes.Buffer
	b.DumpErrors(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "second") || !strings.Contains(lines[1], "first") {
		t.Errorf("DumpErrors should preserve insertion order, got %v", lines)
	}
}
