// Package dialect describes the keyword surface of one BASIC-family
// dialect: which keywords open and close indentation blocks, which tokens
// start comments, and which keywords take line-number arguments.
//
// A Config is built once when a dialect is selected and passed by pointer
// into the classifier, indent calculator and jump scanner. It is never
// mutated after construction, so a single value can be shared freely.
//
// The jump keyword table is a tagged-variant table: each keyword carries a
// Family that selects its argument grammar (single number, comma list, or
// dash range). One generic scan routine in the jumps package consumes the
// table; there are no per-keyword matchers.
package dialect
