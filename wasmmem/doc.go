// Package wasmmem builds the wasm linear-memory views carried by
// CallbackOptions when a fast call originates from an embedded WebAssembly
// module. The views borrow the memory's backing buffer: they are valid for
// one call and must be rebuilt after the memory grows.
package wasmmem
