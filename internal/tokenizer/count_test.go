package tokenizer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fdtree/fdt/internal/tokenizer"
)

// wordCounter is a deterministic Counter stub counting whitespace-separated words.
type wordCounter struct{}

func (wordCounter) Name() string { return "words" }

func (wordCounter) CountString(input string) (int, error) {
	return len(strings.Fields(input)), nil
}

// TestCountBytesText verifies plain text content is counted.
func TestCountBytesText(testingHandle *testing.T) {
	result, countError := tokenizer.CountBytes(wordCounter{}, []byte("alpha beta gamma"))
	if countError != nil {
		testingHandle.Fatalf("CountBytes error: %v", countError)
	}
	if !result.Counted || result.Tokens != 3 {
		testingHandle.Fatalf("unexpected result: %+v", result)
	}
}

// TestCountBytesBinarySkipped verifies binary content reports Counted false.
func TestCountBytesBinarySkipped(testingHandle *testing.T) {
	result, countError := tokenizer.CountBytes(wordCounter{}, []byte{0x00, 0xff, 0x10})
	if countError != nil {
		testingHandle.Fatalf("CountBytes error: %v", countError)
	}
	if result.Counted {
		testingHandle.Fatalf("binary content should not be counted: %+v", result)
	}
}

// TestCountBytesNilCounter verifies a nil counter is an error.
func TestCountBytesNilCounter(testingHandle *testing.T) {
	if _, countError := tokenizer.CountBytes(nil, []byte("text")); countError == nil {
		testingHandle.Fatalf("expected error for nil counter")
	}
}

// TestCountFile verifies reading and counting a file on disk.
func TestCountFile(testingHandle *testing.T) {
	filePath := filepath.Join(testingHandle.TempDir(), "sample.txt")
	if writeError := os.WriteFile(filePath, []byte("one two"), 0o644); writeError != nil {
		testingHandle.Fatalf("writing sample file: %v", writeError)
	}
	result, countError := tokenizer.CountFile(wordCounter{}, filePath)
	if countError != nil {
		testingHandle.Fatalf("CountFile error: %v", countError)
	}
	if !result.Counted || result.Tokens != 2 {
		testingHandle.Fatalf("unexpected result: %+v", result)
	}
}

// TestCountFileMissing verifies a read failure propagates as an error.
func TestCountFileMissing(testingHandle *testing.T) {
	missingPath := filepath.Join(testingHandle.TempDir(), "missing.txt")
	if _, countError := tokenizer.CountFile(wordCounter{}, missingPath); countError == nil {
		testingHandle.Fatalf("expected error for missing file")
	}
}
