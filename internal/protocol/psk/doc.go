// Package psk implements the hybrid ECDH+PSK encryptor and decryptor: the
// same bidirectional envelope flow as the Standard protocol, but the
// symmetric-key HKDF takes rSecret‖currentPSK as IKM and a distinct info
// prefix, binding each message to the ratchet position that produced its
// PSK.
package psk
