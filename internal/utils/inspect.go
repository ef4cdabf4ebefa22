package utils

import (
	"io"
	"net/http"
	"os"
	"unicode/utf8"
)

// sniffLength bounds the number of bytes read when inspecting file content.
const sniffLength = 8000

// DetectMimeType returns the MIME type of the file at filePath based on a
// content sniff of its leading bytes. An unreadable file yields an empty
// string rather than an error.
func DetectMimeType(filePath string) string {
	leadingBytes, readOK := readLeadingBytes(filePath)
	if !readOK {
		return ""
	}
	return http.DetectContentType(leadingBytes)
}

// IsBinary reports whether the provided byte slice appears to contain binary data.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if !utf8.Valid(data) {
		return true
	}
	for _, byteValue := range data {
		if byteValue == 0 {
			return true
		}
	}
	return false
}

// IsFileBinary reports whether the file at path appears to hold binary
// content, judged from its leading bytes. Unreadable files report false.
func IsFileBinary(path string) bool {
	leadingBytes, readOK := readLeadingBytes(path)
	if !readOK {
		return false
	}
	return IsBinary(leadingBytes)
}

func readLeadingBytes(path string) ([]byte, bool) {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		return nil, false
	}
	defer fileHandle.Close()

	buffer := make([]byte, sniffLength)
	bytesRead, readError := fileHandle.Read(buffer)
	if readError != nil && readError != io.EOF {
		return nil, false
	}
	return buffer[:bytesRead], true
}
