// Package circuit declares the branch/network types, sentinel errors and
// construction options shared across the model.
package circuit

import "errors"

// DefaultReference is the reserved identifier of the reference (ground) node.
const DefaultReference = "0"

// Sentinel errors for network validation. All of them describe malformed
// input and are reported before any topology work begins.
var (
	// ErrMissingReference indicates the reference node is absent from the node list.
	ErrMissingReference = errors.New("circuit: reference node missing")

	// ErrNoNodes indicates the network has no node besides the reference.
	ErrNoNodes = errors.New("circuit: need at least one node besides the reference")

	// ErrDuplicateNode indicates a node identifier was declared twice.
	ErrDuplicateNode = errors.New("circuit: duplicate node ID")

	// ErrEmptyNodeID indicates a node identifier is the empty string.
	ErrEmptyNodeID = errors.New("circuit: node ID is empty")

	// ErrDuplicateBranch indicates a branch identifier was declared twice.
	ErrDuplicateBranch = errors.New("circuit: duplicate branch ID")

	// ErrEmptyBranchID indicates a branch identifier is the empty string.
	ErrEmptyBranchID = errors.New("circuit: branch ID is empty")

	// ErrUnknownEndpoint indicates a branch references an undeclared node.
	ErrUnknownEndpoint = errors.New("circuit: branch endpoint not declared")

	// ErrSelfLoop indicates a branch with From == To.
	ErrSelfLoop = errors.New("circuit: self-loop branch")

	// ErrNonPositiveValue indicates a branch value ≤ 0.
	ErrNonPositiveValue = errors.New("circuit: branch value must be positive")

	// ErrUnsupportedKind indicates a component type outside {R,L,C,V,I}.
	ErrUnsupportedKind = errors.New("circuit: unsupported component kind")
)

// Kind is the component type of a branch.
type Kind string

// The five supported linear component kinds.
const (
	Resistor      Kind = "R"
	Inductor      Kind = "L"
	Capacitor     Kind = "C"
	VoltageSource Kind = "V" // ideal step voltage source
	CurrentSource Kind = "I" // ideal step current source
)

// ParseKind converts a wire-format component type into a Kind.
// Anything outside {R,L,C,V,I} yields ErrUnsupportedKind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Resistor, Inductor, Capacitor, VoltageSource, CurrentSource:
		return k, nil
	default:
		return "", errUnsupported(s)
	}
}

// Valid reports whether k is one of the five supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case Resistor, Inductor, Capacitor, VoltageSource, CurrentSource:
		return true
	}

	return false
}

// IsSource reports whether k is an independent source (V or I).
func (k Kind) IsSource() bool { return k == VoltageSource || k == CurrentSource }

// Branch is one oriented circuit element. The From→To orientation defines
// the positive reference direction of its current and, for sources, the
// polarity of the step.
type Branch struct {
	// ID uniquely identifies the branch within its Network.
	ID string

	// From is the tail node identifier.
	From string

	// To is the head node identifier.
	To string

	// Kind is the component type: R, L, C, V or I.
	Kind Kind

	// Value is the component value in SI units (ohms, henries, farads,
	// volts, amperes). Must be strictly positive.
	Value float64
}

// Option configures Network construction.
type Option func(*Options)

// Options holds Network construction parameters.
// Use DefaultOptions to obtain the standard setup.
type Options struct {
	// Reference is the identifier of the ground node. The external
	// interface contract reserves "0"; it is configurable so the
	// convention travels explicitly through the pipeline rather than as
	// implicit global state.
	Reference string
}

// WithReference overrides the reference (ground) node identifier.
func WithReference(id string) Option {
	return func(o *Options) { o.Reference = id }
}

// DefaultOptions returns the standard construction parameters:
// reference node "0".
func DefaultOptions() Options {
	return Options{Reference: DefaultReference}
}
