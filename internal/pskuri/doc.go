// Package pskuri encodes and parses the out-of-band PSK exchange link:
// algochat-psk://v1?addr=<percent-encoded>&psk=<base64url>[&label=<percent-encoded>].
package pskuri
