package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// Variant enumerates the closed set of filter cases. Keeping the set closed
// lets Evaluate dispatch with an exhaustive switch instead of dynamic
// predicate lookup.
type Variant int

const (
	// VariantHidden matches entries whose name begins with a dot.
	VariantHidden Variant = iota
	// VariantExtension matches directories and files carrying a given extension.
	VariantExtension
	// VariantPattern matches entries whose absolute path contains a regex match.
	VariantPattern
	// VariantKind matches entries whose classified on-disk type is in a set.
	VariantKind
	// VariantNot negates an inner filter.
	VariantNot
)

// EntryKind identifies one on-disk object type usable in a Kind filter.
type EntryKind int

const (
	KindSocket EntryKind = iota
	KindFile
	KindDirectory
	KindFifo
	KindSymlink
)

const (
	kindCodeSocket    = "s"
	kindCodeFile      = "f"
	kindCodeDirectory = "d"
	kindCodeFifo      = "p"
	kindCodeSymlink   = "l"

	// errorUnknownKindCodeFormat reports an unsupported type code.
	errorUnknownKindCodeFormat = "unknown type code %q (supported: s, f, d, p, l)"
	// errorPatternCompileFormat reports a regular expression that failed to compile.
	errorPatternCompileFormat = "compiling pattern %q: %w"
)

// kindCodes is the fixed code-to-kind mapping resolved at initialization.
var kindCodes = map[string]EntryKind{
	kindCodeSocket:    KindSocket,
	kindCodeFile:      KindFile,
	kindCodeDirectory: KindDirectory,
	kindCodeFifo:      KindFifo,
	kindCodeSymlink:   KindSymlink,
}

// ParseKindCode resolves a one-letter type code into an EntryKind.
func ParseKindCode(code string) (EntryKind, error) {
	kind, known := kindCodes[strings.ToLower(strings.TrimSpace(code))]
	if !known {
		return 0, fmt.Errorf(errorUnknownKindCodeFormat, code)
	}
	return kind, nil
}

// Classify determines the on-disk type of an entry. Classification follows a
// fixed priority order (socket, regular file, directory, fifo, symlink), so an
// entry satisfying several facets, such as a symlink resolving to a directory,
// is reported as the first matching type. The second return value is false
// when no facet matched, which happens when every stat call failed.
func Classify(entry Entry) (EntryKind, bool) {
	switch {
	case entry.IsSocket():
		return KindSocket, true
	case entry.IsFile():
		return KindFile, true
	case entry.IsDir():
		return KindDirectory, true
	case entry.IsFifo():
		return KindFifo, true
	case entry.IsSymlink():
		return KindSymlink, true
	default:
		return 0, false
	}
}

// Filter is an immutable predicate over an Entry. Construct instances through
// the New* constructors; the zero value is a Hidden filter.
type Filter struct {
	variant   Variant
	extension string
	pattern   *regexp.Regexp
	kinds     map[EntryKind]struct{}
	inner     *Filter
}

// NewHidden returns a filter matching entries whose name begins with a dot.
func NewHidden() Filter {
	return Filter{variant: VariantHidden}
}

// NewExtension returns a filter matching directories and files whose
// extension equals ext. A leading dot on ext is ignored. Directories always
// pass so an extension filter narrows leaf visibility without pruning
// descent.
func NewExtension(ext string) Filter {
	return Filter{
		variant:   VariantExtension,
		extension: strings.TrimPrefix(strings.TrimSpace(ext), extensionSeparator),
	}
}

// NewPattern compiles expression and returns a filter matching entries whose
// absolute path contains at least one match (search semantics, not a full
// anchor). A compile failure is a fatal configuration error for the caller.
func NewPattern(expression string) (Filter, error) {
	compiledPattern, compileError := regexp.Compile(expression)
	if compileError != nil {
		return Filter{}, fmt.Errorf(errorPatternCompileFormat, expression, compileError)
	}
	return Filter{variant: VariantPattern, pattern: compiledPattern}, nil
}

// NewKind returns a filter matching entries whose classified type is one of
// the provided kinds.
func NewKind(kinds ...EntryKind) Filter {
	kindSet := make(map[EntryKind]struct{}, len(kinds))
	for _, kind := range kinds {
		kindSet[kind] = struct{}{}
	}
	return Filter{variant: VariantKind, kinds: kindSet}
}

// NewNot returns the logical negation of inner. Negations nest arbitrarily.
func NewNot(inner Filter) Filter {
	innerCopy := inner
	return Filter{variant: VariantNot, inner: &innerCopy}
}

// Evaluate applies the filter to an entry. The result is a pure function of
// the entry's facets; no filter variant performs IO or mutates state.
func (filterValue Filter) Evaluate(entry Entry) bool {
	switch filterValue.variant {
	case VariantHidden:
		return entry.IsHidden()
	case VariantExtension:
		return entry.IsDir() || entry.Extension() == filterValue.extension
	case VariantPattern:
		return filterValue.pattern != nil && filterValue.pattern.MatchString(entry.AbsolutePath())
	case VariantKind:
		classifiedKind, classified := Classify(entry)
		if !classified {
			return false
		}
		_, member := filterValue.kinds[classifiedKind]
		return member
	case VariantNot:
		return filterValue.inner != nil && !filterValue.inner.Evaluate(entry)
	default:
		return false
	}
}

// Set is an ordered collection of filters combined with logical AND. Order
// never changes the result, only where evaluation short-circuits. The empty
// set admits every entry.
type Set []Filter

// Evaluate reports whether every member filter admits the entry.
func (filterSet Set) Evaluate(entry Entry) bool {
	for _, memberFilter := range filterSet {
		if !memberFilter.Evaluate(entry) {
			return false
		}
	}
	return true
}
