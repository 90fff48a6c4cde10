// Package ast defines the tagged expression/statement node set the parser
// builds and the analyzer annotates in place (spec §3, §9 "Visitor
// dispatch vs tagged variants"). Each node category is a Go interface with
// one concrete struct per variant; passes dispatch with a type switch
// instead of virtual method calls.
package ast

import (
	"cinder/internal/source"
	"cinder/internal/symbols"
	"cinder/internal/token"
	"cinder/internal/types"
)

// Expr is any expression node. Every variant carries the analyzer's two
// mutable annotations: Type and ID, both nil/zero until semantic analysis
// runs.
type Expr interface {
	exprNode()
	Span() source.Span
	// Annotations returns the mutable type/id slot the analyzer writes
	// through during the body pass.
	Annotations() *ExprAnnotations
}

// ExprAnnotations holds the analyzer's post-parse writes to an expression
// node (spec §3: "Every node carries two mutable annotations ... type?:
// Type and id?: SymbolId.").
type ExprAnnotations struct {
	Type *types.Type
	ID   symbols.SymbolID
}

type exprBase struct {
	Sp   source.Span
	Anno ExprAnnotations
}

func (e *exprBase) Span() source.Span             { return e.Sp }
func (e *exprBase) Annotations() *ExprAnnotations { return &e.Anno }

// Literal is an int/float/string/bool literal; its type is determined by
// the payload variant (spec §4.3 "Literal: typed by payload variant").
type Literal struct {
	exprBase
	Value token.Literal
}

func (*Literal) exprNode() {}

// NewLiteral constructs a Literal node spanning tok.
func NewLiteral(tok token.Token) *Literal {
	return &Literal{exprBase: exprBase{Sp: tok.Span}, Value: tok.Literal}
}

// Variable is a bare identifier reference.
type Variable struct {
	exprBase
	Name token.Token
}

func (*Variable) exprNode() {}

// NewVariable constructs a Variable node from its name token.
func NewVariable(name token.Token) *Variable {
	return &Variable{exprBase: exprBase{Sp: name.Span}, Name: name}
}

// Grouping is a parenthesized sub-expression.
type Grouping struct {
	exprBase
	Inner Expr
}

func (*Grouping) exprNode() {}

// NewGrouping constructs a Grouping spanning its enclosing parens.
func NewGrouping(lparen source.Span, inner Expr, rparen source.Span) *Grouping {
	return &Grouping{exprBase: exprBase{Sp: lparen.Cover(rparen)}, Inner: inner}
}

// PreFixOp is a prefix ++ or -- applied to an identifier target (spec §9
// open question: "general lvalues ... are not supported").
type PreFixOp struct {
	exprBase
	Op   token.Token
	Name token.Token
}

func (*PreFixOp) exprNode() {}

// NewPreFixOp constructs a PreFixOp spanning op through name.
func NewPreFixOp(op, name token.Token) *PreFixOp {
	return &PreFixOp{exprBase: exprBase{Sp: op.Span.Cover(name.Span)}, Op: op, Name: name}
}

// Binary is a `+ - * /` arithmetic expression; operand kinds must match
// and the result kind equals the operand kind.
type Binary struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Binary) exprNode() {}

// NewBinary constructs a Binary spanning left through right.
func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{exprBase: exprBase{Sp: left.Span().Cover(right.Span())}, Left: left, Op: op, Right: right}
}

// Conditional is a comparison (`< <= > >= == !=`); its result type is
// always Bool.
type Conditional struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Conditional) exprNode() {}

// NewConditional constructs a Conditional spanning left through right.
func NewConditional(left Expr, op token.Token, right Expr) *Conditional {
	return &Conditional{exprBase: exprBase{Sp: left.Span().Cover(right.Span())}, Left: left, Op: op, Right: right}
}

// Assign is `IDENT = value`.
type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

func (*Assign) exprNode() {}

// NewAssign constructs an Assign spanning name through value.
func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{exprBase: exprBase{Sp: name.Span.Cover(value.Span())}, Name: name, Value: value}
}

// MemberAccess is `object.member`. FieldIndex is -1 until the analyzer
// resolves which struct field member names (spec §4.4: "deterministic
// field order matching MemberAccess.field_index").
type MemberAccess struct {
	exprBase
	Object     Expr
	Member     token.Token
	FieldIndex int
}

func (*MemberAccess) exprNode() {}

// NewMemberAccess constructs a MemberAccess with an unresolved field
// index.
func NewMemberAccess(object Expr, member token.Token) *MemberAccess {
	return &MemberAccess{
		exprBase:   exprBase{Sp: object.Span().Cover(member.Span)},
		Object:     object,
		Member:     member,
		FieldIndex: -1,
	}
}

// MemberAssign is `target.member = value`, where target resolved to a
// MemberAccess during parsing (spec §4.2 "Assignment targets").
type MemberAssign struct {
	exprBase
	Target *MemberAccess
	Value  Expr
	BaseID symbols.SymbolID
}

func (*MemberAssign) exprNode() {}

// NewMemberAssign constructs a MemberAssign spanning target through value.
func NewMemberAssign(target *MemberAccess, value Expr) *MemberAssign {
	return &MemberAssign{exprBase: exprBase{Sp: target.Span().Cover(value.Span())}, Target: target, Value: value}
}

// CallExpr is `callee(args...)`. callee is either a Variable or a
// MemberAccess.
type CallExpr struct {
	exprBase
	Callee Expr
	Args   []Expr
}

func (*CallExpr) exprNode() {}

// NewCallExpr constructs a CallExpr spanning callee through the closing
// paren.
func NewCallExpr(callee Expr, args []Expr, rparen source.Span) *CallExpr {
	return &CallExpr{exprBase: exprBase{Sp: callee.Span().Cover(rparen)}, Callee: callee, Args: args}
}
