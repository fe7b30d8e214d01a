//go:build !fixedcstr_small && !fixedcstr_large

package fixedcstr

// Capacity is the size of the inline buffer, terminator included.
// Build with -tags fixedcstr_small or fixedcstr_large to change it.
const Capacity = 512
