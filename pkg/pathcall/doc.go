// Package pathcall issues Linux path system calls with fixedcstr strings,
// so paths shorter than fixedcstr.Capacity reach the kernel without a heap
// allocation. The *at variants are used relative to the working directory,
// which keeps the set of calls available on every Linux architecture.
//
// Paths containing a zero byte are rejected with EINVAL instead of being
// silently cut short.
package pathcall
