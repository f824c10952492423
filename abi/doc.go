// Package abi defines the closed type-tag enumerations of the fast-call ABI
// and the logical argument types registrants declare. Every logical type has
// exactly one (scalar, shape) translation; the dispatcher's descriptor
// factory consumes those pairs in declaration order.
package abi
