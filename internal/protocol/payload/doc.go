// Package payload classifies decrypted envelope plaintext into a
// key-publish sentinel, a plain-text message, or a message carrying a
// reply context, and builds the corresponding outbound JSON bodies.
package payload
