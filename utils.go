package fixedcstr

// Storage identifies which buffer backs a FixedCString.
type Storage uint8

const (
	Inline Storage = iota // bytes live in the adapter's own array
	Heap                  // bytes live in a buffer obtained from an Allocator
)

func (s Storage) String() string {
	switch s {
	case Inline:
		return "inline"
	case Heap:
		return "heap"
	default:
		return "unknown"
	}
}

// fits reports whether n payload bytes plus the terminator fit inline.
func fits(n int) bool {
	return n+1 <= Capacity
}

// noCopy lets go vet's copylocks check flag values copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
