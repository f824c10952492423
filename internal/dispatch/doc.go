// Package dispatch is an in-process stand-in for the host engine's fast-call
// dispatcher. It allocates real records behind the opaque descriptor handles
// and invokes registered callbacks the way the engine's generated fast path
// would, including the fallback hand-off to a slow handler. The production
// counterpart lives inside the host engine; this one exists so the call
// protocol is exercisable in tests and tooling.
package dispatch
