//go:build fixedcstr_large

package fixedcstr

const Capacity = 4096
