// internal/types/rules.go
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

/*
 * Domain types for segment rule trees.
 *
 * A rule tree is a nested boolean expression over subscriber attributes:
 * Condition leaves combined by AND/OR Groups. The original console encoded
 * the leaf/group distinction by property presence ("attribute" in node);
 * here the discriminant is the concrete type behind the RuleNode interface,
 * so an invalid node shape is unrepresentable.
 *
 * Key types:
 *   - RuleNode: closed sum of *Condition and *Group
 *   - Condition: single attribute comparison (equals or in)
 *   - Group: AND/OR combinator over ordered children
 *   - RuleValue: string | bool | number | list-of-string union
 *
 * Wire format matches the console UI: conditions carry "attribute", groups
 * carry "combinator" and "children". DecodeNode inspects the raw object to
 * pick the concrete type when unmarshaling.
 */

// Combinator joins the children of a rule group.
type Combinator string

const (
	CombinatorAnd Combinator = "AND"
	CombinatorOr  Combinator = "OR"
)

// Comparator selects how a condition compares its value.
type Comparator string

const (
	// ComparatorEquals matches a single scalar value.
	ComparatorEquals Comparator = "equals"
	// ComparatorIn matches any member of a list of values.
	ComparatorIn Comparator = "in"
)

// RootGroupID is the fixed id of every rule tree's root group.
const RootGroupID = "root"

// RuleNode is a node in a segment rule tree: either a *Condition leaf or a
// *Group internal node. The interface is closed; no other implementations
// exist.
type RuleNode interface {
	isRuleNode()
}

// Condition is a leaf comparing one subscriber attribute against a value.
// The value shape must match the comparator: equals takes a scalar, in takes
// a list. Validate enforces this; the evaluator assumes it.
type Condition struct {
	ID         string       `json:"id"`
	Attribute  AttributeKey `json:"attribute"`
	Comparator Comparator   `json:"comparator"`
	Value      RuleValue    `json:"value"`
}

func (*Condition) isRuleNode() {}

// Group is an internal node combining ordered children with AND or OR.
// Rule trees are always trees, never cycles; the root group has id "root".
type Group struct {
	ID         string     `json:"id"`
	Combinator Combinator `json:"combinator"`
	Children   []RuleNode `json:"children"`
}

func (*Group) isRuleNode() {}

// EmptyRoot returns a fresh unconstrained root group.
func EmptyRoot() *Group {
	return &Group{ID: RootGroupID, Combinator: CombinatorAnd, Children: []RuleNode{}}
}

// EnsureGroup normalises an arbitrary node into a root group: nil becomes an
// empty AND root, a bare condition is wrapped in an AND root, and a group is
// returned as-is.
func EnsureGroup(node RuleNode) *Group {
	switch n := node.(type) {
	case nil:
		return EmptyRoot()
	case *Condition:
		return &Group{ID: RootGroupID, Combinator: CombinatorAnd, Children: []RuleNode{n}}
	case *Group:
		return n
	default:
		return EmptyRoot()
	}
}

// UnmarshalJSON decodes a group, dispatching each child to the concrete node
// type by inspecting the raw object for an "attribute" key.
func (g *Group) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         string            `json:"id"`
		Combinator Combinator        `json:"combinator"`
		Children   []json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.ID = raw.ID
	g.Combinator = raw.Combinator
	g.Children = make([]RuleNode, 0, len(raw.Children))
	for _, rc := range raw.Children {
		child, err := DecodeNode(rc)
		if err != nil {
			return err
		}
		g.Children = append(g.Children, child)
	}
	return nil
}

// DecodeNode unmarshals a single rule node from its wire form. An object
// with an "attribute" key is a condition; anything else is a group.
func DecodeNode(data []byte) (RuleNode, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode rule node: %w", err)
	}
	if _, ok := probe["attribute"]; ok {
		var cond Condition
		if err := json.Unmarshal(data, &cond); err != nil {
			return nil, fmt.Errorf("decode condition: %w", err)
		}
		return &cond, nil
	}
	var group Group
	if err := json.Unmarshal(data, &group); err != nil {
		return nil, fmt.Errorf("decode group: %w", err)
	}
	return &group, nil
}

// ValueKind discriminates the shapes a condition value can take.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueBool
	ValueNumber
	ValueList
)

// RuleValue is the value side of a condition: a string, bool, or number
// scalar for equals, or a list of strings for in. The zero value is the
// empty string.
type RuleValue struct {
	Kind ValueKind
	Str  string
	Bool bool
	Num  float64
	List []string
}

// StringValue wraps a string scalar.
func StringValue(s string) RuleValue { return RuleValue{Kind: ValueString, Str: s} }

// BoolValue wraps a boolean scalar.
func BoolValue(b bool) RuleValue { return RuleValue{Kind: ValueBool, Bool: b} }

// NumberValue wraps a numeric scalar.
func NumberValue(n float64) RuleValue { return RuleValue{Kind: ValueNumber, Num: n} }

// ListValue wraps a list of string values.
func ListValue(values ...string) RuleValue { return RuleValue{Kind: ValueList, List: values} }

// IsList reports whether the value is a list.
func (v RuleValue) IsList() bool { return v.Kind == ValueList }

// IsBool reports whether the value is a boolean scalar.
func (v RuleValue) IsBool() bool { return v.Kind == ValueBool }

// Scalar returns the stringified scalar form of the value. Lists stringify
// to their first member for parity with the console's String() coercion.
func (v RuleValue) Scalar() string {
	switch v.Kind {
	case ValueString:
		return v.Str
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ValueList:
		if len(v.List) > 0 {
			return v.List[0]
		}
		return ""
	default:
		return ""
	}
}

// Members returns the value as a list: the list itself, or a single-element
// list holding the stringified scalar. Mirrors the console's
// Array.isArray(value) ? value : [String(value)] normalisation.
func (v RuleValue) Members() []string {
	if v.Kind == ValueList {
		return v.List
	}
	return []string{v.Scalar()}
}

// Canonical returns a stable serialization used for version-diff identity
// and structural hashing.
func (v RuleValue) Canonical() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return v.Scalar()
	}
	return string(b)
}

// MarshalJSON emits the underlying scalar or list without wrapping.
func (v RuleValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueString:
		return json.Marshal(v.Str)
	case ValueBool:
		return json.Marshal(v.Bool)
	case ValueNumber:
		return json.Marshal(v.Num)
	case ValueList:
		if v.List == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.List)
	default:
		return nil, fmt.Errorf("unknown value kind %d", v.Kind)
	}
}

// UnmarshalJSON accepts a string, bool, number, or list of strings.
func (v *RuleValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = ListValue(list...)
		return nil
	}
	return fmt.Errorf("rule value must be string, bool, number, or string list: %s", string(data))
}
