package gen

import (
	"io"
	"strings"

	"github.com/ddddddO/gtree"

	"github.com/vango-dev/routefs/pkg/routes"
)

// RenderTree writes the route tree as an indented tree under rootName.
// Route files are annotated with their inferred methods.
func RenderTree(w io.Writer, rootName string, tree routes.Tree) error {
	root := gtree.NewRoot(rootName)

	for _, e := range tree.Files() {
		segments := strings.Split(strings.TrimPrefix(e.Path, "/"), "/")
		node := root
		for _, seg := range segments[:len(segments)-1] {
			node = node.Add(seg)
		}

		label := segments[len(segments)-1]
		if methods := routes.InferMethods(e.Source); len(methods) > 0 {
			label += " [" + strings.Join(methods, " ") + "]"
		}
		node.Add(label)
	}

	return gtree.OutputProgrammably(w, root)
}
