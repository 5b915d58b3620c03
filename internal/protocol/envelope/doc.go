// Package envelope implements the bit-exact wire codecs for the two
// envelope shapes that ride in a transaction note: the v1 Standard
// envelope (protocolId=1, 126-byte header) and the v1.1 PSK envelope
// (protocolId=2, 130-byte header, adding a big-endian ratchet counter).
package envelope
