package types

import "errors"

// Sentinel errors for Converge operations.
var (
	// ErrRuleTreeTooDeep indicates a rule tree exceeds MaxRuleDepth.
	ErrRuleTreeTooDeep = errors.New("rule tree exceeds maximum depth")

	// ErrTooManyRuleNodes indicates a rule tree exceeds MaxRuleNodes.
	ErrTooManyRuleNodes = errors.New("rule tree has too many nodes")

	// ErrTooManyInValues indicates an in-comparator list exceeds MaxInValues.
	ErrTooManyInValues = errors.New("in comparator has too many values")

	// ErrUnknownAttribute indicates a condition targets an attribute outside
	// the closed attribute set.
	ErrUnknownAttribute = errors.New("unknown segment attribute")

	// ErrInvalidComparator indicates a comparator other than equals or in.
	ErrInvalidComparator = errors.New("invalid comparator")

	// ErrInvalidCombinator indicates a combinator other than AND or OR.
	ErrInvalidCombinator = errors.New("invalid combinator")

	// ErrValueShape indicates a condition value whose shape does not match
	// its comparator (equals requires a scalar, in requires a list).
	ErrValueShape = errors.New("value shape does not match comparator")

	// ErrMissingRoot indicates an operation was handed a nil rule tree.
	ErrMissingRoot = errors.New("rule tree root is required")

	// ErrSegmentNotFound indicates a segment id with no stored definition.
	ErrSegmentNotFound = errors.New("segment not found")

	// ErrOpportunityNotFound indicates an opportunity id outside the catalog.
	ErrOpportunityNotFound = errors.New("opportunity not found")
)

// Resource limits enforced at validation time to keep evaluation cheap enough
// to run on every keystroke.
const (
	// MaxRuleDepth bounds recursive descent. Trees are user-editable and
	// nominally unbounded; 20 levels is far beyond anything the builder UI
	// produces and keeps stack depth trivial.
	MaxRuleDepth = 20

	// MaxRuleNodes bounds total tree size. Evaluation targets sub-millisecond
	// latency for trees under ~50 nodes; 500 leaves plenty of headroom while
	// preventing degenerate payloads.
	MaxRuleNodes = 500

	// MaxInValues bounds in-comparator lists to keep membership checks and
	// additive weight sums linear and small.
	MaxInValues = 64
)
