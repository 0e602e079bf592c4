package tickseq

// CopyPolicy classifies how an element is duplicated.
type CopyPolicy int

const (
	// Shared elements are immutable constants (enumeration-style); copying
	// returns the same value.
	Shared CopyPolicy = iota
	// Owned elements carry their own state and must be duplicated to copy.
	Owned
)

// Shared reports whether the policy is enumeration-style.
func (p CopyPolicy) Shared() bool {
	return p == Shared
}

func (p CopyPolicy) String() string {
	switch p {
	case Shared:
		return "shared"
	case Owned:
		return "owned"
	default:
		return "unknown"
	}
}

// Element is the capability set every value stored in a Sequence provides.
//
// ShallowCopy duplicates the top-level value and may share nested data.
// DeepCopy returns a value with no ownership ties to the receiver.
// For Shared elements both copies return the receiver itself.
// None of the methods may mutate the receiver.
type Element[T any] interface {
	CopyPolicy() CopyPolicy
	ShallowCopy() T
	DeepCopy() T
	Equal(other T) bool
	String() string
}

// IsEnumeration reports whether v is an enumeration-style element.
func IsEnumeration[T Element[T]](v T) bool {
	return v.CopyPolicy().Shared()
}
