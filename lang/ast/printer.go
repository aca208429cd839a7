package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer controls pretty-printing of the AST nodes, used by the
// `willow parse` and `willow resolve` debug commands.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// WithLines prefixes each node with its source line number.
	WithLines bool

	// NodeFmt is the format verb used to print each node (either %v or
	// %s). Defaults to %v.
	NodeFmt string
}

// Print pretty-prints every top-level statement in prog, one subtree per
// statement, indented by nesting depth.
func (p *Printer) Print(prog []Stmt) error {
	pp := &printer{w: p.Output, withLines: p.WithLines, nodeFmt: p.NodeFmt}
	if pp.nodeFmt == "" {
		pp.nodeFmt = "%v"
	}
	for _, s := range prog {
		Walk(pp, s)
	}
	return pp.err
}

type printer struct {
	w         io.Writer
	withLines bool
	nodeFmt   string
	depth     int
	err       error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}
	p.depth++
	p.printNode(n, p.depth-1)
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}
	format := "%s"
	args := []interface{}{strings.Repeat(". ", indent)}
	if p.withLines {
		format += "[line %d] "
		args = append(args, n.Line())
	}
	format += p.nodeFmt + "\n"
	args = append(args, n)
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
