package compile

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"

	"github.com/chazu/bowerbird/pkg/ast"
)

// Diagnostic is one semantic problem found while walking a document.
type Diagnostic struct {
	Pos  ast.Pos
	Stmt string // statement kind: components, bind, layout, ...
	Msg  string
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Pos.Line, d.Pos.Col, d.Stmt, d.Msg)
}

// diagnostics accumulates semantic problems for one compilation. Most
// diagnostics clear the clean-parse flag; purely informational ones (a
// duplicate declaration is ignored, not failed) do not.
type diagnostics struct {
	log     *slog.Logger
	list    []Diagnostic
	unclean bool
}

// addf records a clean-clearing diagnostic and logs it.
func (ds *diagnostics) addf(pos ast.Pos, stmt, format string, args ...interface{}) {
	d := Diagnostic{Pos: pos, Stmt: stmt, Msg: fmt.Sprintf(format, args...)}
	ds.list = append(ds.list, d)
	ds.unclean = true
	ds.log.Warn("semantic error", "line", pos.Line, "col", pos.Col, "stmt", stmt, "msg", d.Msg)
}

// notef records a diagnostic that leaves the clean flag alone.
func (ds *diagnostics) notef(pos ast.Pos, stmt, format string, args ...interface{}) {
	d := Diagnostic{Pos: pos, Stmt: stmt, Msg: fmt.Sprintf(format, args...)}
	ds.list = append(ds.list, d)
	ds.log.Info("diagnostic", "line", pos.Line, "col", pos.Col, "stmt", stmt, "msg", d.Msg)
}

func (ds *diagnostics) clean() bool { return !ds.unclean }

// err folds the clean-clearing diagnostics into one error, or nil when the
// compilation was clean.
func (ds *diagnostics) err() error {
	if !ds.unclean {
		return nil
	}
	var merr *multierror.Error
	for _, d := range ds.list {
		merr = multierror.Append(merr, fmt.Errorf("%s", d))
	}
	return merr.ErrorOrNil()
}
