package fixpoint

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Visualize writes the subgraph reachable from the root in Graphviz dot
// format, with every node annotated by its converged entry and exit
// states. Meant for debugging analyses after Run has completed.
func (it *Iterator[N, D, PD]) Visualize(w io.Writer) error {
	reach := it.fwd.Reachable(it.params.Root)
	ids := make(map[N]int, len(reach))
	for i, node := range reach {
		ids[node] = i
	}

	var buf bytes.Buffer
	buf.WriteString("digraph fixpoint {\n")
	buf.WriteString("\tnode [shape=box];\n")

	for i, node := range reach {
		entry := it.EntryStateAt(node)
		exit := it.ExitStateAt(node)
		label := fmt.Sprintf("%v\\nentry: %s\\nexit: %s",
			node, PD(&entry).String(), PD(&exit).String())
		fmt.Fprintf(&buf, "\tn%d [label=\"%s\"];\n", i, escape(label))
	}

	for _, node := range reach {
		for _, succ := range it.fwd.Edges(node) {
			if j, found := ids[succ]; found {
				fmt.Fprintf(&buf, "\tn%d -> n%d;\n", ids[node], j)
			}
		}
	}

	buf.WriteString("}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "writing dot graph")
	}
	return nil
}

func escape(label string) string {
	return strings.ReplaceAll(label, `"`, `\"`)
}
