// Package discovery implements the two key-discovery strategies over an
// injected slice of decoded transactions: scanning for a target's own
// self-addressed key announcement, and falling back to the sender key
// asserted inside an observed envelope.
package discovery
