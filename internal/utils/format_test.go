package utils_test

import (
	"testing"
	"time"

	"github.com/fdtree/fdt/internal/utils"
)

// TestFormatFileSize verifies unit selection and rounding behavior.
func TestFormatFileSize(testingHandle *testing.T) {
	expectations := map[int64]string{
		-5:      "0b",
		0:       "0b",
		123:     "123b",
		1024:    "1kb",
		1536:    "1.5kb",
		10240:   "10kb",
		1048576: "1mb",
	}
	for byteLength, expected := range expectations {
		if actual := utils.FormatFileSize(byteLength); actual != expected {
			testingHandle.Errorf("FormatFileSize(%d) = %q, want %q", byteLength, actual, expected)
		}
	}
}

// TestFormatTimestampZero verifies the zero time formats to an empty string.
func TestFormatTimestampZero(testingHandle *testing.T) {
	if actual := utils.FormatTimestamp(time.Time{}); actual != "" {
		testingHandle.Errorf("zero time formatted to %q", actual)
	}
}

// TestFormatTimestampLayout verifies minute-precision formatting.
func TestFormatTimestampLayout(testingHandle *testing.T) {
	sampleTime := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.Local)
	if actual := utils.FormatTimestamp(sampleTime); actual != "2024-01-02 03:04" {
		testingHandle.Errorf("FormatTimestamp = %q", actual)
	}
}

// TestIsBinary verifies the binary content heuristic.
func TestIsBinary(testingHandle *testing.T) {
	if utils.IsBinary(nil) {
		testingHandle.Errorf("empty content reported binary")
	}
	if utils.IsBinary([]byte("plain text")) {
		testingHandle.Errorf("text content reported binary")
	}
	if !utils.IsBinary([]byte{0x00, 0x01}) {
		testingHandle.Errorf("NUL content not reported binary")
	}
	if !utils.IsBinary([]byte{0xff, 0xfe, 0xfd}) {
		testingHandle.Errorf("invalid UTF-8 not reported binary")
	}
}
