// Package descriptor builds engine-owned type and signature descriptors from
// logical argument types, through the engine's DescriptorFactory boundary.
// Building happens once per registrant, typically at module initialization;
// the resulting handles are immutable and shared read-only across calls.
package descriptor
