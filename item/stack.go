package item

// DefaultMaxCount is the capacity used when a stack does not specify one.
const DefaultMaxCount = 64

// Stack is a quantity of a single kind of item. The zero value is the
// empty stack.
type Stack struct {
	Item     string
	Meta     string
	Count    int
	MaxCount int
}

// Empty is the canonical empty stack.
var Empty = Stack{}

// New returns a stack of count items with the default capacity.
func New(item string, count int) Stack {
	return Stack{Item: item, Count: count, MaxCount: DefaultMaxCount}
}

// IsEmpty reports whether s holds no items.
func (s Stack) IsEmpty() bool {
	return s.Item == "" || s.Count <= 0
}

// Capacity returns the maximum number of items s can hold.
func (s Stack) Capacity() int {
	if s.MaxCount <= 0 {
		return DefaultMaxCount
	}
	return s.MaxCount
}

// Room returns how many more items fit into s.
func (s Stack) Room() int {
	return max(0, s.Capacity()-s.Count)
}

// SameItem reports whether a and b hold the same item with the same
// metadata. Empty stacks never match.
func SameItem(a, b Stack) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return a.Item == b.Item && a.Meta == b.Meta
}

// Split takes up to n items off s. It returns the remainder and the
// taken part.
func Split(s Stack, n int) (rest, taken Stack) {
	if s.IsEmpty() || n <= 0 {
		return s, Empty
	}
	n = min(n, s.Count)

	taken = s
	taken.Count = n
	s.Count -= n
	if s.Count == 0 {
		s = Empty
	}
	return s, taken
}

// Combine moves up to amount items from one stack onto another. The amount
// is limited by what from holds and by the room left in to. Stacks of
// different items are returned unchanged. Items are never created or lost:
// the sum of both counts is the same before and after.
func Combine(from, to Stack, amount int) (Stack, Stack, int) {
	if !SameItem(from, to) {
		return from, to, 0
	}

	amount = min(amount, from.Count, to.Room())
	if amount <= 0 {
		return from, to, 0
	}

	from.Count -= amount
	to.Count += amount
	if from.Count == 0 {
		from = Empty
	}
	return from, to, amount
}
