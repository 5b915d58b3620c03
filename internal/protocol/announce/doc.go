// Package announce parses the raw note bytes of a key-announcement
// transaction into a DiscoveredKey, optionally verifying the embedded
// Ed25519 signature against the announcer's identity key.
package announce
