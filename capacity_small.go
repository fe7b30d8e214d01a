//go:build fixedcstr_small && !fixedcstr_large

package fixedcstr

const Capacity = 128
