// Package registry stores fast-callable functions against their namespace
// and name, building each one's engine descriptors exactly once at
// registration. Registered entries are immutable afterwards and safe for
// concurrent lookup from any number of calling threads.
package registry
