package calc

import (
	"strconv"
	"strings"
)

// Node is a node in the syntax tree of an expression. A Node of kind NodeNum
// holds a literal in Value. Every other valid kind is a binary operation on
// Left and Right, which the node owns exclusively.
type Node struct {
	Kind  NodeKind
	Value float64

	Left  *Node
	Right *Node
}

// NodeKind identifies the operation a Node performs.
type NodeKind int8

const (
	NodeNone NodeKind = iota

	NodeNum // Value
	NodeAdd // Left + Right
	NodeSub // Left - Right
	NodeMul // Left * Right
	NodeDiv // Left / Right
)

func (k NodeKind) String() string {
	switch k {
	case NodeNone:
		return "None"
	case NodeNum:
		return "Num"
	case NodeAdd:
		return "Add"
	case NodeSub:
		return "Sub"
	case NodeMul:
		return "Mul"
	case NodeDiv:
		return "Div"
	default:
		return "NodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Num creates a literal node.
func Num(v float64) *Node {
	return &Node{Kind: NodeNum, Value: v}
}

// Op creates a binary operation node. Panics if op is not one of + - * /.
func Op(op rune, left, right *Node) *Node {
	k := opkind(op)
	if k == NodeNone {
		panic("calc: invalid operator " + strconv.QuoteRune(op))
	}
	return &Node{Kind: k, Left: left, Right: right}
}

// opkind gets the node kind for an operator rune, or NodeNone if there is no
// such operator.
func opkind(op rune) NodeKind {
	switch op {
	case '+':
		return NodeAdd
	case '-':
		return NodeSub
	case '*':
		return NodeMul
	case '/':
		return NodeDiv
	default:
		return NodeNone
	}
}

// Op returns the operator of a binary node, or 0 for any other node.
func (n *Node) Op() rune {
	switch n.Kind {
	case NodeAdd:
		return '+'
	case NodeSub:
		return '-'
	case NodeMul:
		return '*'
	case NodeDiv:
		return '/'
	default:
		return 0
	}
}

// Equal reports whether two trees have the same shape, operators, and
// literal values.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Kind != m.Kind {
		return false
	}
	if n.Kind == NodeNum {
		return n.Value == m.Value
	}
	return n.Left.Equal(m.Left) && n.Right.Equal(m.Right)
}

// String formats the tree with every node bracketed, alternating round and
// square brackets at each level.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.Kind {
	case NodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
	case NodeNum:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case NodeAdd, NodeSub, NodeMul, NodeDiv:
		n.Left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteRune(n.Op())
		b.WriteByte(' ')
		n.Right.fmt(b, !square)
	default:
		panic("calc: invalid node kind " + n.Kind.String() + " after writing " + b.String())
	}
}
