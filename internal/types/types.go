// Package types defines every cross‑package data structure used by the fdt CLI.
package types

import "encoding/xml"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// TreeNode represents one node of the rendered directory tree. Children are
// kept in directory-iteration order; a node owns its children exclusively.
type TreeNode struct {
	XMLName      xml.Name    `json:"-" xml:"node"`
	Path         string      `json:"path" xml:"path"`
	Name         string      `json:"name" xml:"name"`
	Type         string      `json:"type" xml:"type"`
	Size         string      `json:"size,omitempty" xml:"size,omitempty"`
	SizeBytes    int64       `json:"-" xml:"-"`
	LastModified string      `json:"lastModified,omitempty" xml:"lastModified,omitempty"`
	MimeType     string      `json:"mimeType,omitempty" xml:"mimeType,omitempty"`
	Tokens       int         `json:"tokens,omitempty" xml:"tokens,omitempty"`
	Model        string      `json:"model,omitempty" xml:"model,omitempty"`
	Children     []*TreeNode `json:"children,omitempty" xml:"children>node,omitempty"`
	TotalFiles   int         `json:"totalFiles,omitempty" xml:"totalFiles,omitempty"`
	TotalSize    string      `json:"totalSize,omitempty" xml:"totalSize,omitempty"`
	TotalTokens  int         `json:"totalTokens,omitempty" xml:"totalTokens,omitempty"`
}

// IsDirectory reports whether the node represents a directory.
func (node *TreeNode) IsDirectory() bool {
	return node.Type == NodeTypeDirectory
}
