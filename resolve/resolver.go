/*
File    : pico8ls-core/resolve/resolver.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package resolve

import (
	"github.com/akashmaji946/pico8ls-core/ast"
	"github.com/akashmaji946/pico8ls-core/diag"
)

// Result is everything the resolver produces from one AST walk.
type Result struct {
	Root     *Scope
	Index    *DefUseIndex
	Warnings []diag.Warning
}

// Resolve builds the scope tree and definition-usage index for chunk.
func Resolve(chunk *ast.Chunk) *Result {
	r := &resolver{index: newDefUseIndex()}
	r.root = newScope(r.nextScopeID(), chunk.Bounds(), nil)
	r.current = r.root
	chunk.Accept(r)
	return &Result{Root: r.root, Index: r.index, Warnings: r.warnings}
}

// resolver implements ast.Visitor, walking the AST once while maintaining a
// current scope. It is total over the node variant set: every expression
// kind that can contain an identifier reference resolves it, and every leaf
// kind is a deliberate no-op.
type resolver struct {
	root     *Scope
	current  *Scope
	index    *DefUseIndex
	warnings []diag.Warning
	scopeSeq int
	defSeq   int
}

func (r *resolver) nextScopeID() int {
	id := r.scopeSeq
	r.scopeSeq++
	return id
}

func (r *resolver) nextDefID() int {
	id := r.defSeq
	r.defSeq++
	return id
}

func (r *resolver) pushScope(bounds ast.Node) *Scope {
	s := newScope(r.nextScopeID(), bounds.Bounds(), r.current)
	r.current = s
	return s
}

func (r *resolver) popScope(outer *Scope) {
	r.current = outer
}

func (r *resolver) addWarning(kind diag.Kind, msg string, bounds ast.Node) {
	r.warnings = append(r.warnings, diag.Warning{Kind: kind, Message: msg, Bounds: bounds.Bounds()})
}

func (r *resolver) visitExpr(e ast.Expression) {
	if e == nil {
		return
	}
	e.Accept(r)
}

func (r *resolver) visitBody(body []ast.Statement) {
	for _, stmt := range body {
		stmt.Accept(r)
	}
}

// declareLocal binds name in the current scope, recording its declaration
// in the def-use index, and returns the new Definition.
func (r *resolver) declareLocal(kind DefinitionKind, id *ast.Identifier) *Definition {
	def := &Definition{ID: r.nextDefID(), Name: id.Name, Kind: kind, Bounds: id.Bounds()}
	r.current.Bind(def)
	r.index.recordDecl(def)
	id.IsLocal = kind != DefGlobal
	id.Scope = &ast.ScopeRef{ScopeID: r.current.ID}
	return def
}

// resolveWrite resolves an assignment target identifier: an existing
// binding (local or global) attaches as a usage, while a name unknown
// anywhere in the scope chain implicitly creates a global definition at the
// chunk (root) scope, per the specification's implicit-global rule.
func (r *resolver) resolveWrite(id *ast.Identifier) {
	if def, scope := r.current.LookUp(id.Name); def != nil {
		id.IsLocal = def.Kind != DefGlobal
		id.Scope = &ast.ScopeRef{ScopeID: scope.ID}
		r.index.recordUse(def, id.Bounds())
		return
	}
	def := &Definition{ID: r.nextDefID(), Name: id.Name, Kind: DefGlobal, Bounds: id.Bounds()}
	r.root.Bind(def)
	r.index.recordDecl(def)
	id.IsLocal = false
	id.Scope = &ast.ScopeRef{ScopeID: r.root.ID}
}

// resolveAssignTarget handles the three expression kinds the parser accepts
// as assignment targets. Only a bare Identifier can introduce a new
// binding; index/member targets merely use their base expression.
func (r *resolver) resolveAssignTarget(e ast.Expression) {
	switch t := e.(type) {
	case *ast.Identifier:
		r.resolveWrite(t)
	case *ast.IndexExpression:
		r.visitExpr(t.Target)
		r.visitExpr(t.Index)
	case *ast.MemberExpression:
		r.visitExpr(t.Target)
	}
}

func (r *resolver) VisitChunk(n *ast.Chunk) {
	r.visitBody(n.Body)
}

func (r *resolver) VisitAssignmentStatement(n *ast.AssignmentStatement) {
	for _, e := range n.Init {
		r.visitExpr(e)
	}
	for _, v := range n.Variables {
		r.resolveAssignTarget(v)
	}
}

// VisitLocalStatement resolves Init in the current (outer) scope before
// declaring the new locals, so `local x = x` binds the right-hand `x` to
// whatever it referred to before this statement.
func (r *resolver) VisitLocalStatement(n *ast.LocalStatement) {
	for _, e := range n.Init {
		r.visitExpr(e)
	}
	for _, name := range n.Names {
		r.declareLocal(DefLocal, name)
	}
}

func (r *resolver) VisitCallStatement(n *ast.CallStatement) {
	r.visitExpr(n.Expression)
}

func (r *resolver) VisitIfStatement(n *ast.IfStatement) {
	for i := range n.Clauses {
		c := &n.Clauses[i]
		if c.Condition != nil {
			r.visitExpr(c.Condition)
		}
		outer := r.current
		r.current = newScope(r.nextScopeID(), c.Bounds, outer)
		r.visitBody(c.Body)
		r.popScope(outer)
	}
}

func (r *resolver) VisitWhileStatement(n *ast.WhileStatement) {
	r.visitExpr(n.Condition)
	outer := r.pushScope(n)
	r.visitBody(n.Body)
	r.popScope(outer)
}

// VisitRepeatStatement resolves Condition inside the body's scope, since
// `until` may reference locals the body declared.
func (r *resolver) VisitRepeatStatement(n *ast.RepeatStatement) {
	outer := r.pushScope(n)
	r.visitBody(n.Body)
	r.visitExpr(n.Condition)
	r.popScope(outer)
}

func (r *resolver) VisitForNumericStatement(n *ast.ForNumericStatement) {
	r.visitExpr(n.Start)
	r.visitExpr(n.End)
	r.visitExpr(n.Step)
	outer := r.pushScope(n)
	r.declareLocal(DefLocal, n.Variable)
	r.visitBody(n.Body)
	r.popScope(outer)
}

func (r *resolver) VisitForGenericStatement(n *ast.ForGenericStatement) {
	for _, it := range n.Iterators {
		r.visitExpr(it)
	}
	outer := r.pushScope(n)
	for _, v := range n.Variables {
		r.declareLocal(DefLocal, v)
	}
	r.visitBody(n.Body)
	r.popScope(outer)
}

// VisitFunctionDeclaration registers a local function's own name in the
// enclosing scope before walking its body, so a recursive self-call inside
// the body resolves; a non-local declaration instead introduces or reuses a
// global at the chunk scope, regardless of how deeply it is nested.
func (r *resolver) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if id, ok := n.Identifier.(*ast.Identifier); ok {
		if n.IsLocal {
			r.declareLocal(DefFunction, id)
		} else if def, scope := r.root.LookUp(id.Name); def != nil {
			id.IsLocal = false
			id.Scope = &ast.ScopeRef{ScopeID: scope.ID}
			r.index.recordUse(def, id.Bounds())
		} else {
			def := &Definition{ID: r.nextDefID(), Name: id.Name, Kind: DefFunction, Bounds: id.Bounds()}
			r.root.Bind(def)
			r.index.recordDecl(def)
			id.IsLocal = false
			id.Scope = &ast.ScopeRef{ScopeID: r.root.ID}
		}
	} else if member, ok := n.Identifier.(*ast.MemberExpression); ok {
		r.visitExpr(member.Target)
	}

	outer := r.pushScope(n)
	for i, p := range n.Parameters {
		if n.IsMethod && i == 0 {
			r.declareLocal(DefSelf, p)
			continue
		}
		r.declareLocal(DefParameter, p)
	}
	r.visitBody(n.Body)
	r.popScope(outer)
}

func (r *resolver) VisitReturnStatement(n *ast.ReturnStatement) {
	for _, a := range n.Arguments {
		r.visitExpr(a)
	}
}

func (r *resolver) VisitBreakStatement(n *ast.BreakStatement) {}
func (r *resolver) VisitGotoStatement(n *ast.GotoStatement)   {}
func (r *resolver) VisitLabelStatement(n *ast.LabelStatement) {}

func (r *resolver) VisitDoStatement(n *ast.DoStatement) {
	outer := r.pushScope(n)
	r.visitBody(n.Body)
	r.popScope(outer)
}

func (r *resolver) VisitIncludeStatement(n *ast.IncludeStatement) {}

// VisitIdentifier resolves a read reference: an existing binding attaches
// as a usage, and a genuinely unknown name is reported as a warning and
// given a tentative global placeholder so subsequent references to the same
// name still resolve consistently.
func (r *resolver) VisitIdentifier(n *ast.Identifier) {
	if def, scope := r.current.LookUp(n.Name); def != nil {
		n.IsLocal = def.Kind != DefGlobal
		n.Scope = &ast.ScopeRef{ScopeID: scope.ID}
		r.index.recordUse(def, n.Bounds())
		return
	}
	r.addWarning(diag.KindUndefinedIdentifier, "undefined identifier '"+n.Name+"'", n)
	def := &Definition{ID: r.nextDefID(), Name: n.Name, Kind: DefGlobal, Bounds: n.Bounds()}
	r.root.Bind(def)
	r.index.recordDecl(def)
	n.IsLocal = false
	n.Scope = &ast.ScopeRef{ScopeID: r.root.ID}
}

func (r *resolver) VisitNumericLiteral(n *ast.NumericLiteral) {}
func (r *resolver) VisitStringLiteral(n *ast.StringLiteral)   {}
func (r *resolver) VisitBooleanLiteral(n *ast.BooleanLiteral) {}
func (r *resolver) VisitNilLiteral(n *ast.NilLiteral)         {}
func (r *resolver) VisitVarargLiteral(n *ast.VarargLiteral)   {}

func (r *resolver) VisitBinaryExpression(n *ast.BinaryExpression) {
	r.visitExpr(n.Left)
	r.visitExpr(n.Right)
}

func (r *resolver) VisitLogicalExpression(n *ast.LogicalExpression) {
	r.visitExpr(n.Left)
	r.visitExpr(n.Right)
}

func (r *resolver) VisitUnaryExpression(n *ast.UnaryExpression) {
	r.visitExpr(n.Argument)
}

func (r *resolver) VisitIndexExpression(n *ast.IndexExpression) {
	r.visitExpr(n.Target)
	r.visitExpr(n.Index)
}

// VisitMemberExpression resolves the base of a.b.c: member names carry no
// independent binding of their own (see resolveAssignTarget and the
// specification's note on member chains), but the member name's position is
// still recorded against the base's Definition so a host can navigate from
// any `.b`/`.c` in the chain, not just the base identifier itself.
func (r *resolver) VisitMemberExpression(n *ast.MemberExpression) {
	r.visitExpr(n.Target)
	if def := r.baseDefinition(n.Target); def != nil {
		r.index.recordUse(def, n.Identifier.Bounds())
	}
}

// baseDefinition finds the Definition of the identifier anchoring a chain of
// member/index accesses, e.g. the `a` in `a.b.c` or `a[1].c`, so member
// names without a binding of their own can still be indexed against it.
func (r *resolver) baseDefinition(e ast.Expression) *Definition {
	switch t := e.(type) {
	case *ast.Identifier:
		def, _ := r.current.LookUp(t.Name)
		return def
	case *ast.MemberExpression:
		return r.baseDefinition(t.Target)
	case *ast.IndexExpression:
		return r.baseDefinition(t.Target)
	default:
		return nil
	}
}

func (r *resolver) VisitCallExpression(n *ast.CallExpression) {
	r.visitExpr(n.Target)
	for _, a := range n.Arguments {
		r.visitExpr(a)
	}
}

func (r *resolver) VisitTableCallExpression(n *ast.TableCallExpression) {
	r.visitExpr(n.Target)
	r.visitExpr(n.Argument)
}

func (r *resolver) VisitStringCallExpression(n *ast.StringCallExpression) {
	r.visitExpr(n.Target)
}

// VisitTableConstructorExpression resolves a keyed field's key expression
// (`[x] = 1`) like any other expression, but skips a named field's key
// (`x = 1`), which is a literal field name rather than a variable read.
func (r *resolver) VisitTableConstructorExpression(n *ast.TableConstructorExpression) {
	for _, f := range n.Fields {
		if f.Kind == ast.FieldKeyed {
			r.visitExpr(f.Key)
		}
		r.visitExpr(f.Value)
	}
}

func (r *resolver) VisitFunctionExpression(n *ast.FunctionExpression) {
	outer := r.pushScope(n)
	for _, p := range n.Parameters {
		r.declareLocal(DefParameter, p)
	}
	r.visitBody(n.Body)
	r.popScope(outer)
}
