// Package dispatch defines the capability through which the flow reaches
// its synthesis operations. The flow core depends only on the Dispatcher
// interface, so it can be driven by a real synthesis kernel, the script
// emitter shipped here, or a test double.
package dispatch
