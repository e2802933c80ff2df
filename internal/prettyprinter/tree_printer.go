package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/funvibe/stlc/internal/ast"
)

// --- Tree Printer (indented AST dump) ---

type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

// Tree renders t one node per line, children indented under their parent.
func Tree(t ast.Term) string {
	if t == nil {
		return "<nil>\n"
	}
	p := NewTreePrinter()
	t.Accept(p)
	return p.String()
}

func (p *TreePrinter) line(format string, args ...interface{}) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

// child prints t one level deeper, under an optional role label.
func (p *TreePrinter) child(role string, t ast.Term) {
	p.indent++
	if role != "" {
		p.line("%s:", role)
		p.indent++
		defer func() { p.indent-- }()
	}
	t.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitVariable(v *ast.Variable) {
	p.line("Variable %s", v.Name)
}

func (p *TreePrinter) VisitConstant(c *ast.Constant) {
	p.line("Constant %s", lo.Ternary(c.Value, "true", "false"))
}

func (p *TreePrinter) VisitApplication(a *ast.Application) {
	p.line("Application")
	p.child("", a.Function)
	p.child("", a.Argument)
}

func (p *TreePrinter) VisitAbstraction(a *ast.Abstraction) {
	p.line("Abstraction %s : %s", a.Param, Type(a.ParamType))
	p.child("", a.Body)
}

func (p *TreePrinter) VisitConditional(c *ast.Conditional) {
	p.line("Conditional")
	p.child("if", c.Condition)
	p.child("then", c.Consequence)
	p.child("else", c.Alternative)
}
