// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fdtree/fdt/internal/commands"
	"github.com/fdtree/fdt/internal/config"
	"github.com/fdtree/fdt/internal/filter"
	"github.com/fdtree/fdt/internal/output"
	"github.com/fdtree/fdt/internal/services/clipboard"
	"github.com/fdtree/fdt/internal/tokenizer"
	"github.com/fdtree/fdt/internal/types"
	"github.com/fdtree/fdt/internal/utils"
)

const (
	hiddenFlagName   = "hidden"
	hiddenFlagShort  = "H"
	typeFlagName     = "type"
	typeFlagShort    = "t"
	patternFlagName  = "pattern"
	patternFlagShort = "p"
	excludeFlagName  = "exclude"
	excludeFlagShort = "E"
	maxDepthFlagName = "max-depth"
	extFlagName      = "ext"
	extFlagShort     = "e"
	formatFlagName   = "format"
	allDirsFlagName  = "all-dirs"
	summaryFlagName  = "summary"
	tokensFlagName   = "tokens"
	modelFlagName    = "model"
	copyFlagName     = "copy"
	versionFlagName  = "version"

	hiddenFlagDescription   = "include hidden entries"
	typeFlagDescription     = "only show entries of the given type: s, f, d, p, l (repeatable)"
	patternFlagDescription  = "only show entries whose path matches the regular expression"
	excludeFlagDescription  = "hide entries whose path matches the regular expression (repeatable)"
	maxDepthFlagDescription = "maximum depth of recursion when listing entries"
	extFlagDescription      = "only show files with the extension (repeatable)"
	formatFlagDescription   = "output format: raw, json, or xml"
	allDirsFlagDescription  = "always show and descend into directories; filters narrow only file visibility"
	summaryFlagDescription  = "include size and aggregate metadata in json/xml output"
	tokensFlagDescription   = "include token counts in json/xml output"
	modelFlagDescription    = "tokenizer model to use for token counting"
	copyFlagDescription     = "copy the rendered output to the clipboard"
	versionFlagDescription  = "display application version"

	rootUse              = "fdt [path]"
	rootShortDescription = "filtered directory tree lister"
	rootLongDescription  = `fdt recursively lists a directory as an indented tree, applying a
composable set of inclusion and exclusion filters to every entry.
Hidden entries are excluded by default; pass -H to include them.
Use --format to select raw, json, or xml output.`
	rootUsageExample = `  # List the current directory, hidden entries included
  fdt -H

  # Only Go files, three levels deep
  fdt -e go --max-depth 3 .

  # Regular files matching a pattern, vendor excluded
  fdt -t f -p 'handler' -E 'vendor' ./src`

	versionTemplate = "fdt version: %s\n"
	defaultPath     = "."

	// invalidFormatMessage reports an unsupported --format value.
	invalidFormatMessage = "invalid format value %q (supported: raw, json, xml)"
	// warningClipboardFormat reports a failed clipboard copy; output was already printed.
	warningClipboardFormat = "Warning: copying output to clipboard: %v\n"
)

// listOptions stores the flag values assembled into a traversal run.
type listOptions struct {
	showHidden      bool
	typeCodes       []string
	pattern         string
	excludePatterns []string
	maxDepth        int
	extensions      []string
	format          string
	allDirs         bool
	summaryEnabled  bool
	tokensEnabled   bool
	tokenModel      string
	copyEnabled     bool
}

// isSupportedFormat reports whether the provided format is recognized.
func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML:
		return true
	default:
		return false
	}
}

// Execute runs the fdt application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command with environment-backed defaults.
func createRootCommand() *cobra.Command {
	defaults := config.Load()
	var showVersion bool
	options := listOptions{
		maxDepth:       defaults.MaxDepth,
		format:         defaults.Format,
		summaryEnabled: true,
		tokenModel:     defaults.Model,
	}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			rootPath := defaultPath
			if len(arguments) == 1 {
				rootPath = arguments[0]
			}
			return runListing(rootPath, options, command.OutOrStdout())
		},
	}

	rootCommand.Flags().BoolVarP(&options.showHidden, hiddenFlagName, hiddenFlagShort, false, hiddenFlagDescription)
	rootCommand.Flags().StringArrayVarP(&options.typeCodes, typeFlagName, typeFlagShort, nil, typeFlagDescription)
	rootCommand.Flags().StringVarP(&options.pattern, patternFlagName, patternFlagShort, "", patternFlagDescription)
	rootCommand.Flags().StringArrayVarP(&options.excludePatterns, excludeFlagName, excludeFlagShort, nil, excludeFlagDescription)
	rootCommand.Flags().IntVar(&options.maxDepth, maxDepthFlagName, defaults.MaxDepth, maxDepthFlagDescription)
	rootCommand.Flags().StringArrayVarP(&options.extensions, extFlagName, extFlagShort, nil, extFlagDescription)
	rootCommand.Flags().StringVar(&options.format, formatFlagName, defaults.Format, formatFlagDescription)
	rootCommand.Flags().BoolVar(&options.allDirs, allDirsFlagName, false, allDirsFlagDescription)
	rootCommand.Flags().BoolVar(&options.summaryEnabled, summaryFlagName, true, summaryFlagDescription)
	rootCommand.Flags().BoolVar(&options.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&options.tokenModel, modelFlagName, defaults.Model, modelFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyEnabled, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	return rootCommand
}

// buildFilterSet assembles the ordered filter set from flag values. Any
// invalid type code or non-compiling pattern fails here, before traversal
// begins, so no partial output is produced for a bad configuration.
func buildFilterSet(options listOptions) (filter.Set, error) {
	var filterSet filter.Set
	if !options.showHidden {
		filterSet = append(filterSet, filter.NewNot(filter.NewHidden()))
	}
	for _, typeCode := range options.typeCodes {
		entryKind, parseError := filter.ParseKindCode(typeCode)
		if parseError != nil {
			return nil, parseError
		}
		filterSet = append(filterSet, filter.NewKind(entryKind))
	}
	if options.pattern != "" {
		patternFilter, patternError := filter.NewPattern(options.pattern)
		if patternError != nil {
			return nil, patternError
		}
		filterSet = append(filterSet, patternFilter)
	}
	for _, excludeExpression := range options.excludePatterns {
		excludeFilter, excludeError := filter.NewPattern(excludeExpression)
		if excludeError != nil {
			return nil, excludeError
		}
		filterSet = append(filterSet, filter.NewNot(excludeFilter))
	}
	for _, extensionValue := range options.extensions {
		filterSet = append(filterSet, filter.NewExtension(extensionValue))
	}
	return filterSet, nil
}

// runListing performs one traversal and renders the result. Access-denied
// conditions inside the traversal surface as stderr warnings and do not
// affect the exit status; only a missing root or a bad configuration is fatal.
func runListing(rootPath string, options listOptions, standardOutput io.Writer) error {
	outputFormat := strings.ToLower(options.format)
	if !isSupportedFormat(outputFormat) {
		return fmt.Errorf(invalidFormatMessage, options.format)
	}

	filterSet, filterSetError := buildFilterSet(options)
	if filterSetError != nil {
		return filterSetError
	}

	treeBuilder := &commands.Builder{
		Filters:         filterSet,
		MaxDepth:        options.maxDepth,
		AllDirs:         options.allDirs,
		IncludeMetadata: options.summaryEnabled && outputFormat != types.FormatRaw,
	}
	if options.tokensEnabled {
		tokenCounter, resolvedModel, counterError := tokenizer.NewCounter(options.tokenModel)
		if counterError != nil {
			return counterError
		}
		treeBuilder.TokenCounter = tokenCounter
		treeBuilder.TokenModel = resolvedModel
	}

	rootNode, buildError := treeBuilder.Build(rootPath)
	if buildError != nil {
		return buildError
	}

	var rendered string
	var renderError error
	switch outputFormat {
	case types.FormatJSON:
		rendered, renderError = output.RenderJSON(rootNode)
	case types.FormatXML:
		rendered, renderError = output.RenderXML(rootNode)
	default:
		rendered = output.RenderRaw(rootNode)
	}
	if renderError != nil {
		return renderError
	}

	fmt.Fprintln(standardOutput, strings.TrimRight(rendered, "\n"))

	if options.copyEnabled {
		if copyError := clipboard.NewService().Copy(rendered); copyError != nil {
			fmt.Fprintf(os.Stderr, warningClipboardFormat, copyError)
		}
	}
	return nil
}
