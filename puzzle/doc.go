// Package puzzle provides built-in predicate implementations and a generator
// for proof-of-work style puzzle instances.
//
// A puzzle is defined by an opaque payload and a difficulty threshold. A
// candidate nonce solves the puzzle when a digest of payload||nonce, truncated
// to its first 16 bits, is below the threshold. Lower difficulty values make
// the puzzle harder: difficulty 1 accepts roughly one candidate in 65536.
//
// Two evaluators are provided:
//
//   - Puzzle: SHA-256 digest, the canonical proof-of-work predicate
//   - Fast: xxh3 digest, non-cryptographic, for load tests and benchmarks
//
// Both are immutable after creation and safe for concurrent use from any
// number of workers. Generator produces random puzzle instances.
package puzzle
