package httpd

import "testing"

func feedString(t *testing.T, r *LineReader, s string) []string {
	t.Helper()
	var lines []string
	for i := 0; i < len(s); i++ {
		if line, complete := r.Feed(s[i]); complete {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestLineReaderStripsCarriageReturns(t *testing.T) {
	r := NewLineReader(1024)

	lines := feedString(t, r, "GET /cmd_lock HTTP/1.1\r\n\r\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	if lines[0] != "GET /cmd_lock HTTP/1.1" {
		t.Fatalf("line = %q", lines[0])
	}
	if lines[1] != "" {
		t.Fatalf("expected empty second line, got %q", lines[1])
	}
}

func TestLineReaderBareLineFeed(t *testing.T) {
	r := NewLineReader(1024)

	lines := feedString(t, r, "GET /cmd_home\n")
	if len(lines) != 1 || lines[0] != "GET /cmd_home" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestLineReaderResetsBetweenLines(t *testing.T) {
	r := NewLineReader(1024)

	lines := feedString(t, r, "first\nsecond\n")
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestLineReaderTruncatesOverlongLines(t *testing.T) {
	r := NewLineReader(8)

	lines := feedString(t, r, "abcdefghijklmnop\nnext\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	if lines[0] != "abcdefgh" {
		t.Fatalf("truncated line = %q, want captured 8-byte head", lines[0])
	}
	if lines[1] != "next" {
		t.Fatalf("line after overflow = %q", lines[1])
	}
}

func TestLineReaderIncompleteLineStaysBuffered(t *testing.T) {
	r := NewLineReader(1024)

	if lines := feedString(t, r, "GET /cmd_back"); lines != nil {
		t.Fatalf("expected no completed line, got %q", lines)
	}
	lines := feedString(t, r, " HTTP/1.1\r\n")
	if len(lines) != 1 || lines[0] != "GET /cmd_back HTTP/1.1" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}
