// Package commands contains the core traversal logic for the fdt command.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fdtree/fdt/internal/filter"
	"github.com/fdtree/fdt/internal/tokenizer"
	"github.com/fdtree/fdt/internal/types"
	"github.com/fdtree/fdt/internal/utils"
)

const (
	// warningAccessDeniedFormat is emitted once per directory whose listing was refused.
	warningAccessDeniedFormat = "Warning: access denied for %s: %v\n"
	// warningStatPathFormat is used when file information cannot be retrieved.
	warningStatPathFormat = "Warning: unable to stat %s: %v\n"
	// warningTokenCountFormat is used when token estimation fails for a file.
	warningTokenCountFormat = "Warning: failed to count tokens for %s: %v\n"

	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorRootPathFormat is used when the root path does not exist or cannot be read.
	errorRootPathFormat = "root path %s: %w"
)

// Builder performs a filtered, depth-bounded, depth-first directory traversal
// and assembles the resulting tree. A Builder holds no state across Build
// calls; the decrementing depth budget is the only traversal control.
type Builder struct {
	// Filters is the AND-composed predicate set consulted for every entry.
	Filters filter.Set
	// MaxDepth is the recursion budget. Directories are descended into only
	// while budget remains; a directory admitted with an exhausted budget
	// appears as a node with zero children.
	MaxDepth int
	// AllDirs switches to the alternate traversal policy: directories are
	// always admitted and descended into, and filters narrow only the
	// visibility of non-directory entries.
	AllDirs bool
	// IncludeMetadata attaches size, modification time, MIME type, and
	// aggregate summaries to nodes.
	IncludeMetadata bool
	// TokenCounter, when set, attaches token estimates to file nodes.
	TokenCounter tokenizer.Counter
	// TokenModel names the tokenizer model recorded on nodes carrying counts.
	TokenModel string
	// Diagnostics receives one warning line per recoverable condition.
	// Defaults to stderr when nil.
	Diagnostics io.Writer
}

// Build walks rootPath and returns the root node of the resulting tree. The
// root node's label is the final segment of rootPath. A missing or
// unreadable root is the only fatal condition; denied subdirectories are
// reported to Diagnostics and contribute childless nodes while the
// remaining traversal continues.
func (builder *Builder) Build(rootPath string) (*types.TreeNode, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}
	rootInfo, rootStatError := os.Stat(absoluteRootPath)
	if rootStatError != nil {
		return nil, fmt.Errorf(errorRootPathFormat, rootPath, rootStatError)
	}

	rootNode := &types.TreeNode{
		Path: absoluteRootPath,
		Name: filepath.Base(absoluteRootPath),
		Type: types.NodeTypeDirectory,
	}
	if builder.IncludeMetadata {
		rootNode.LastModified = utils.FormatTimestamp(rootInfo.ModTime())
	}
	if !rootInfo.IsDir() {
		rootNode.Type = types.NodeTypeFile
		builder.decorateFileNode(rootNode, rootInfo)
		return rootNode, nil
	}

	builder.populateChildren(rootNode, absoluteRootPath, builder.MaxDepth)
	if builder.IncludeMetadata {
		totalFiles, totalBytes, totalTokens := collectSummary(rootNode.Children)
		applySummary(rootNode, totalFiles, totalBytes, totalTokens)
	}
	return rootNode, nil
}

// populateChildren attaches the admitted children of directoryPath to node.
// A zero or negative depth budget means the directory is not iterated at
// all, so a depth-exhausted directory keeps exactly zero children.
func (builder *Builder) populateChildren(node *types.TreeNode, directoryPath string, remainingDepth int) {
	if remainingDepth <= 0 {
		return
	}

	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		fmt.Fprintf(builder.diagnostics(), warningAccessDeniedFormat, directoryPath, readDirectoryError)
		return
	}

	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(directoryPath, directoryEntry.Name())
		childEntry := filter.NewEntry(childPath)
		if !builder.admits(childEntry) {
			continue
		}

		childNode := &types.TreeNode{
			Path: childPath,
			Name: childEntry.Name(),
			Type: types.NodeTypeFile,
		}
		if childEntry.IsDir() {
			childNode.Type = types.NodeTypeDirectory
		}

		if builder.IncludeMetadata {
			entryInfo, infoError := directoryEntry.Info()
			if infoError != nil {
				fmt.Fprintf(builder.diagnostics(), warningStatPathFormat, childPath, infoError)
			} else {
				childNode.LastModified = utils.FormatTimestamp(entryInfo.ModTime())
				if !childEntry.IsDir() {
					builder.decorateFileNode(childNode, entryInfo)
				}
			}
		}

		if childEntry.IsDir() {
			builder.populateChildren(childNode, childPath, remainingDepth-1)
			if builder.IncludeMetadata {
				totalFiles, totalBytes, totalTokens := collectSummary(childNode.Children)
				applySummary(childNode, totalFiles, totalBytes, totalTokens)
			}
		} else if builder.TokenCounter != nil {
			builder.countTokens(childNode, childPath)
		}

		node.Children = append(node.Children, childNode)
	}
}

// admits evaluates the filter set for an entry under the active policy.
func (builder *Builder) admits(entry filter.Entry) bool {
	if builder.AllDirs && entry.IsDir() {
		return true
	}
	return builder.Filters.Evaluate(entry)
}

// decorateFileNode records size and MIME metadata on a file node.
func (builder *Builder) decorateFileNode(node *types.TreeNode, info os.FileInfo) {
	if !builder.IncludeMetadata {
		return
	}
	node.SizeBytes = info.Size()
	node.Size = utils.FormatFileSize(info.Size())
	node.MimeType = utils.DetectMimeType(node.Path)
}

// countTokens attaches a best-effort token estimate to a file node. Binary
// files are skipped; read or encode failures produce a diagnostic line and
// leave the node without a count.
func (builder *Builder) countTokens(node *types.TreeNode, filePath string) {
	tokenResult, tokenError := tokenizer.CountFile(builder.TokenCounter, filePath)
	if tokenError != nil {
		fmt.Fprintf(builder.diagnostics(), warningTokenCountFormat, filePath, tokenError)
		return
	}
	if tokenResult.Counted {
		node.Tokens = tokenResult.Tokens
		node.Model = builder.TokenModel
	}
}

func (builder *Builder) diagnostics() io.Writer {
	if builder.Diagnostics != nil {
		return builder.Diagnostics
	}
	return os.Stderr
}

// collectSummary returns the aggregate file count, byte size, and token
// total for the provided children.
func collectSummary(children []*types.TreeNode) (int, int64, int) {
	var totalFiles int
	var totalBytes int64
	var totalTokens int
	for _, child := range children {
		if child == nil {
			continue
		}
		files := child.TotalFiles
		bytes := child.SizeBytes
		tokens := child.TotalTokens
		if child.Type == types.NodeTypeFile {
			if files == 0 {
				files = 1
			}
			if tokens == 0 {
				tokens = child.Tokens
			}
		}
		totalFiles += files
		totalBytes += bytes
		totalTokens += tokens
	}
	return totalFiles, totalBytes, totalTokens
}

// applySummary stores aggregate counts, bytes, and tokens on the node.
func applySummary(node *types.TreeNode, totalFiles int, totalBytes int64, totalTokens int) {
	node.TotalFiles = totalFiles
	node.SizeBytes = totalBytes
	node.TotalSize = utils.FormatFileSize(totalBytes)
	node.TotalTokens = totalTokens
}
