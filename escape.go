package blackfriday

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
)

// processSalt is mixed into every hash key so that placeholders cannot be
// guessed or collide with user-supplied text, while staying stable for
// the lifetime of the process (and therefore stable within any single
// Convert call, which is all §3's "stable per Document" invariant
// requires). Generated once; no ecosystem library does keyed-placeholder
// hashing more idiomatically than crypto/rand + crypto/sha256 — see
// DESIGN.md.
var processSalt = func() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is unrecoverable; fall back to a fixed
		// salt rather than panicking the package at init time.
		return "blackfriday-fallback-salt"
	}
	return hex.EncodeToString(b)
}()

var hashCounter struct {
	mu sync.Mutex
	n  uint64
}

// hashKey returns a new opaque, collision-resistant placeholder string
// for the given class of shielded content ("html-block", "html-span",
// "code", "escape", ...). The key is never valid Markdown syntax so it
// survives every later rewrite pass untouched.
func hashKey(class string) string {
	hashCounter.mu.Lock()
	hashCounter.n++
	n := hashCounter.n
	hashCounter.mu.Unlock()

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%d", processSalt, class, n)))
	return "\x02" + class[:1] + hex.EncodeToString(sum[:8]) + "\x03"
}

// hashRegistry holds the four shielding tables described in spec.md §3:
// escaped literal characters, hashed code spans, hashed raw HTML blocks,
// and hashed raw HTML spans. Each Document owns exactly one, created
// fresh per Convert call.
type hashRegistry struct {
	escapeTable map[byte]string
	codeTable   map[string]string
	htmlBlocks  map[string]string
	htmlSpans   map[string]string
}

// charsToEscape lists every literal character the pipeline must be able
// to shield behind a hash key so that later stages never reinterpret it
// as Markdown syntax.
var charsToEscape = []byte("\\`*_{}[]()>#+-.!")

func newHashRegistry() *hashRegistry {
	h := &hashRegistry{
		escapeTable: make(map[byte]string, len(charsToEscape)),
		codeTable:   make(map[string]string),
		htmlBlocks:  make(map[string]string),
		htmlSpans:   make(map[string]string),
	}
	for _, c := range charsToEscape {
		h.escapeTable[c] = hashKey("escape")
	}
	return h
}

// hashHTMLBlock stores a raw HTML block and returns its placeholder.
func (h *hashRegistry) hashHTMLBlock(html string) string {
	key := hashKey("block")
	h.htmlBlocks[key] = html
	return key
}

// hashHTMLSpan stores a raw inline HTML span and returns its placeholder.
func (h *hashRegistry) hashHTMLSpan(html string) string {
	key := hashKey("span")
	h.htmlSpans[key] = html
	return key
}

// hashCode stores an already-encoded code span body and returns its
// placeholder.
func (h *hashRegistry) hashCode(code string) string {
	key := hashKey("code")
	h.codeTable[key] = code
	return key
}
