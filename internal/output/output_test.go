package output_test

import (
	"strings"
	"testing"

	"github.com/fdtree/fdt/internal/output"
	"github.com/fdtree/fdt/internal/types"
)

// buildSampleTree returns a small tree: root containing a file, and a
// subdirectory holding one file.
func buildSampleTree() *types.TreeNode {
	return &types.TreeNode{
		Path: "/tmp/root",
		Name: "root",
		Type: types.NodeTypeDirectory,
		Children: []*types.TreeNode{
			{Path: "/tmp/root/a.txt", Name: "a.txt", Type: types.NodeTypeFile},
			{
				Path: "/tmp/root/sub",
				Name: "sub",
				Type: types.NodeTypeDirectory,
				Children: []*types.TreeNode{
					{Path: "/tmp/root/sub/b.txt", Name: "b.txt", Type: types.NodeTypeFile},
				},
			},
		},
	}
}

// rawExpected defines the expected raw rendering of the sample tree.
const rawExpected = "root/\n" +
	"├── a.txt\n" +
	"└── sub/\n" +
	"    └── b.txt\n"

// TestRenderRaw verifies connector placement and the directory suffix.
func TestRenderRaw(testingHandle *testing.T) {
	actual := output.RenderRaw(buildSampleTree())
	if actual != rawExpected {
		testingHandle.Errorf("unexpected raw output:\n%q\nwant:\n%q", actual, rawExpected)
	}
}

// TestRenderRawNilTree verifies a nil tree renders to an empty string.
func TestRenderRawNilTree(testingHandle *testing.T) {
	if actual := output.RenderRaw(nil); actual != "" {
		testingHandle.Errorf("expected empty output for nil tree, got %q", actual)
	}
}

// rawMiddleChildExpected checks the branch padding applied to a non-final
// directory child.
const rawMiddleChildExpected = "root/\n" +
	"├── sub/\n" +
	"│   └── b.txt\n" +
	"└── z.txt\n"

// TestRenderRawMiddleDirectory verifies padding below a non-final directory.
func TestRenderRawMiddleDirectory(testingHandle *testing.T) {
	rootNode := &types.TreeNode{
		Name: "root",
		Type: types.NodeTypeDirectory,
		Children: []*types.TreeNode{
			{
				Name: "sub",
				Type: types.NodeTypeDirectory,
				Children: []*types.TreeNode{
					{Name: "b.txt", Type: types.NodeTypeFile},
				},
			},
			{Name: "z.txt", Type: types.NodeTypeFile},
		},
	}
	actual := output.RenderRaw(rootNode)
	if actual != rawMiddleChildExpected {
		testingHandle.Errorf("unexpected raw output:\n%q\nwant:\n%q", actual, rawMiddleChildExpected)
	}
}

// jsonExpected defines the expected JSON rendering of a single file node.
const jsonExpected = "{\n" +
	"  \"path\": \"/tmp/root/a.txt\",\n" +
	"  \"name\": \"a.txt\",\n" +
	"  \"type\": \"file\"\n" +
	"}"

// TestRenderJSON verifies JSON rendering with empty optional fields omitted.
func TestRenderJSON(testingHandle *testing.T) {
	fileNode := &types.TreeNode{Path: "/tmp/root/a.txt", Name: "a.txt", Type: types.NodeTypeFile}
	actual, renderError := output.RenderJSON(fileNode)
	if renderError != nil {
		testingHandle.Fatalf("RenderJSON error: %v", renderError)
	}
	if actual != jsonExpected {
		testingHandle.Errorf("unexpected JSON output: %q", actual)
	}
}

// TestRenderXML verifies the XML document header and nested node elements.
func TestRenderXML(testingHandle *testing.T) {
	actual, renderError := output.RenderXML(buildSampleTree())
	if renderError != nil {
		testingHandle.Fatalf("RenderXML error: %v", renderError)
	}
	if !strings.HasPrefix(actual, "<?xml") {
		testingHandle.Errorf("missing XML header: %q", actual)
	}
	for _, requiredFragment := range []string{"<node>", "<name>root</name>", "<children>", "<name>b.txt</name>"} {
		if !strings.Contains(actual, requiredFragment) {
			testingHandle.Errorf("XML output missing %q:\n%s", requiredFragment, actual)
		}
	}
}
