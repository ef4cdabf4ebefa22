// Package output renders directory trees in raw, JSON, and XML formats.
package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"

	"github.com/fdtree/fdt/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	// directorySuffix visually distinguishes directory labels in raw output.
	directorySuffix = "/"

	xmlHeader = xml.Header
)

// RenderRaw returns the tree as indented text. Directory labels carry a
// trailing slash; children print in insertion order with box-drawing
// connectors.
func RenderRaw(rootNode *types.TreeNode) string {
	if rootNode == nil {
		return ""
	}
	var buffer bytes.Buffer
	buffer.WriteString(nodeLabel(rootNode))
	buffer.WriteString("\n")
	writeRawChildren(&buffer, rootNode, "")
	return buffer.String()
}

// writeRawChildren renders the children of treeNode beneath the accumulated prefix.
func writeRawChildren(buffer *bytes.Buffer, treeNode *types.TreeNode, prefix string) {
	numberOfChildren := len(treeNode.Children)
	for childIndex, childNode := range treeNode.Children {
		connector := treeBranchConnector
		childPrefix := prefix + treeBranchPadding
		if childIndex == numberOfChildren-1 {
			connector = treeLastConnector
			childPrefix = prefix + treeLastPadding
		}
		buffer.WriteString(prefix)
		buffer.WriteString(connector)
		buffer.WriteString(nodeLabel(childNode))
		buffer.WriteString("\n")
		if childNode.IsDirectory() {
			writeRawChildren(buffer, childNode, childPrefix)
		}
	}
}

func nodeLabel(treeNode *types.TreeNode) string {
	if treeNode.IsDirectory() {
		return treeNode.Name + directorySuffix
	}
	return treeNode.Name
}

// RenderJSON marshals the tree as an indented JSON document.
func RenderJSON(rootNode *types.TreeNode) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(rootNode, indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", jsonEncodeError
	}
	return string(encoded), nil
}

// RenderXML marshals the tree as an XML document with the standard header.
func RenderXML(rootNode *types.TreeNode) (string, error) {
	encoded, xmlMarshalError := xml.MarshalIndent(rootNode, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", xmlMarshalError
	}
	return xmlHeader + string(encoded), nil
}
