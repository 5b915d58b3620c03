package payload

import (
	"encoding/json"
	"unicode/utf8"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
)

const (
	replyPreviewMaxBytes       = 80
	replyPreviewTruncatedBytes = 77
	replyPreviewEllipsis       = "…"

	keyPublishType = "key-publish"
)

type replyTo struct {
	TxID    string `json:"txid,omitempty"`
	Preview string `json:"preview,omitempty"`
}

type textBody struct {
	Text    string   `json:"text"`
	ReplyTo *replyTo `json:"replyTo,omitempty"`
}

type typeTag struct {
	Type string `json:"type"`
}

// Classify interprets plaintext that has already passed AEAD
// verification. It returns (payload, true) for a real message, and
// (zero value, false) for a key-publish body — the "no message"
// sentinel the spec describes.
func Classify(plaintext []byte) (domain.DecryptedPayload, bool) {
	if len(plaintext) == 0 || plaintext[0] != '{' || !utf8.Valid(plaintext) {
		return domain.DecryptedPayload{Text: string(plaintext)}, true
	}

	var tag typeTag
	if err := json.Unmarshal(plaintext, &tag); err == nil && tag.Type == keyPublishType {
		return domain.DecryptedPayload{}, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(plaintext, &raw); err != nil {
		return domain.DecryptedPayload{Text: string(plaintext)}, true
	}
	textRaw, present := raw["text"]
	var text string
	if !present || json.Unmarshal(textRaw, &text) != nil {
		return domain.DecryptedPayload{Text: string(plaintext)}, true
	}

	out := domain.DecryptedPayload{Text: text}
	var body textBody
	if err := json.Unmarshal(plaintext, &body); err == nil && body.ReplyTo != nil {
		out.ReplyToID = body.ReplyTo.TxID
		out.ReplyToPreview = body.ReplyTo.Preview
	}
	return out, true
}

// BuildKeyPublish returns the self-encrypted `{"type":"key-publish"}`
// marker plaintext.
func BuildKeyPublish() []byte {
	b, _ := json.Marshal(typeTag{Type: keyPublishType})
	return b
}

// BuildMessage returns the plaintext JSON body for a message, optionally
// carrying a reply context. replyToID/replyToPreview are both ignored
// when replyToID is empty.
func BuildMessage(text, replyToID, replyToPreview string) []byte {
	body := textBody{Text: text}
	if replyToID != "" {
		body.ReplyTo = &replyTo{TxID: replyToID, Preview: TruncateReplyPreview(replyToPreview)}
	}
	b, _ := json.Marshal(body)
	return b
}

// TruncateReplyPreview truncates s to 80 UTF-8 bytes at most, as
// 77 bytes plus a trailing ellipsis when it would otherwise be longer.
// The cut point backs off to the nearest rune boundary; a character made
// of several runes can still be cut between them.
func TruncateReplyPreview(s string) string {
	if len(s) <= replyPreviewMaxBytes {
		return s
	}
	cut := []byte(s)[:replyPreviewTruncatedBytes]
	for len(cut) > 0 && !utf8.Valid(cut) {
		cut = cut[:len(cut)-1]
	}
	return string(cut) + replyPreviewEllipsis
}
