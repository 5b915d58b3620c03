// Package ratchet implements the two-level PSK ratchet: a counter n is
// split into a session index (n/100) and a position within that session
// (n mod 100), and each level derives its key via HKDF-SHA256 from the
// level above. The derivation is a pure function of (initialPSK, n); no
// state is carried between calls.
package ratchet
