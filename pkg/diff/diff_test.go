package diff

import (
	"strings"
	"testing"
)

func TestUnified_IdenticalContent(t *testing.T) {
	content := []byte("line1\nline2\nline3\n")

	if result := Unified(content, content, "before", "after"); result != "" {
		t.Errorf("Expected empty diff for identical content, got: %s", result)
	}
}

func TestUnified_SingleLineChange(t *testing.T) {
	before := []byte("line1\nline2\nline3\n")
	after := []byte("line1\nmodified\nline3\n")

	result := Unified(before, after, "before", "after")

	want := "--- before\n+++ after\n@@ -1,3 +1,3 @@\n line1\n-line2\n+modified\n line3\n"
	if result != want {
		t.Errorf("unexpected diff:\n%s\nwant:\n%s", result, want)
	}
}

func TestUnified_ChangedJSONValue(t *testing.T) {
	before := []byte("{\n  \"name\": \"Ocean <script>\",\n  \"mode\": \"dark\"\n}\n")
	after := []byte("{\n  \"name\": \"Ocean script\",\n  \"mode\": \"dark\"\n}\n")

	result := Unified(before, after, "input", "sanitized")

	if !strings.Contains(result, "-  \"name\": \"Ocean <script>\",\n+  \"name\": \"Ocean script\",\n") {
		t.Errorf("Diff should replace the whole name line, got:\n%s", result)
	}
	if !strings.Contains(result, "   \"mode\": \"dark\"") {
		t.Error("Diff should include context lines")
	}
}

func TestUnified_SeparateHunks(t *testing.T) {
	var before, after []string
	for i := 0; i < 20; i++ {
		line := "same"
		before = append(before, line)
		after = append(after, line)
	}
	before[1], after[1] = "old-a", "new-a"
	before[18], after[18] = "old-b", "new-b"

	result := Unified([]byte(strings.Join(before, "\n")+"\n"), []byte(strings.Join(after, "\n")+"\n"), "a", "b")

	if got := strings.Count(result, "@@ -"); got != 2 {
		t.Fatalf("expected 2 hunks, got %d:\n%s", got, result)
	}
	if !strings.Contains(result, "@@ -1,5 +1,5 @@") {
		t.Errorf("first hunk header wrong:\n%s", result)
	}
	if !strings.Contains(result, "@@ -16,5 +16,5 @@") {
		t.Errorf("second hunk header wrong:\n%s", result)
	}
}

func TestUnified_Truncation(t *testing.T) {
	var beforeLines, afterLines []string
	for i := 0; i < 11000; i++ {
		beforeLines = append(beforeLines, "expected line")
		if i%2 == 0 {
			afterLines = append(afterLines, "actual line")
		} else {
			afterLines = append(afterLines, "expected line")
		}
	}

	result := Unified([]byte(strings.Join(beforeLines, "\n")), []byte(strings.Join(afterLines, "\n")), "before", "after")

	if !strings.Contains(result, "truncated") {
		t.Error("Large diff should be truncated with truncation message")
	}
	if lineCount := strings.Count(result, "\n"); lineCount > 10001 {
		t.Errorf("Truncated diff should not exceed 10,000 lines, got %d", lineCount)
	}
}

func TestUnified_EmptyBefore(t *testing.T) {
	result := Unified([]byte(""), []byte("new content\n"), "before", "after")

	if !strings.Contains(result, "@@ -0,0 +1,1 @@\n+new content\n") {
		t.Errorf("Diff should show added content, got:\n%s", result)
	}
}

func TestCount(t *testing.T) {
	stats := Count([]byte("a\nb\nc\n"), []byte("a\nx\ny\nc\n"))
	if stats.Removed != 1 || stats.Added != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats := Count([]byte("a\n"), []byte("a\n")); stats != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}
