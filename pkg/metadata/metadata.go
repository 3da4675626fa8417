// Package metadata stamps a generated dashboard with a trailer recording its format
// version, whether every order field parsed, when it was rendered and a SHA-256 of the
// body. The trailer is an HTML comment so Markdown viewers hide it.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Trailer delimiters.
const (
	TagStart = "<!-- METADATA_START"
	TagEnd   = "METADATA_END -->"
)

// Trailer keys.
const (
	KeyVersion    = "VERSION"
	KeyValidation = "VALIDATION"
	KeyLastModify = "LAST_MODIFY"
	KeyHash       = "HASH"
)

// Errors returned by Verify.
var (
	ErrNoMetadataBlock = errors.New("no metadata block found")
	ErrNoHashFound     = errors.New("no hash found in metadata")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata is the parsed trailer of a dashboard. Validation is true when the
// report behind the dashboard had no unparseable timestamps or prices.
type Metadata struct {
	LastModify time.Time
	Version    string
	Hash       string
	Validation bool
}

var trailerPattern = regexp.MustCompile(`(?s)<!--\s*METADATA_START\s*\n(.*?)\n\s*METADATA_END\s*-->`)

// Extract splits content into its trailer and its body. The body has the trailer and
// trailing newlines removed; it is exactly what the hash covers. The returned
// Metadata is nil when there is no trailer.
func Extract(content string) (*Metadata, string) {
	body := strings.TrimRight(trailerPattern.ReplaceAllString(content, ""), "\n")

	match := trailerPattern.FindStringSubmatch(content)
	if match == nil {
		return nil, body
	}

	return parseTrailer(match[1]), body
}

func parseTrailer(block string) *Metadata {
	meta := &Metadata{}

	for line := range strings.SplitSeq(block, "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}

		val = strings.TrimSpace(val)

		switch strings.TrimSpace(key) {
		case KeyVersion:
			meta.Version = val
		case KeyValidation:
			meta.Validation = strings.EqualFold(val, "TRUE")
		case KeyLastModify:
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				meta.LastModify = t
			}
		case KeyHash:
			meta.Hash = val
		}
	}

	return meta
}

// CalculateHash returns the hex SHA-256 of the dashboard body, ignoring any trailer.
func CalculateHash(content string) string {
	_, body := Extract(content)
	sum := sha256.Sum256([]byte(body))

	return hex.EncodeToString(sum[:])
}

// Sign drops any existing trailer and appends a fresh one. A zero LastModify is
// stamped with the current time; the Hash field of meta is ignored.
func Sign(content string, meta Metadata) string {
	_, body := Extract(content)

	if meta.LastModify.IsZero() {
		meta.LastModify = time.Now()
	}

	meta.Hash = CalculateHash(body)

	return body + "\n\n" + renderTrailer(meta)
}

func renderTrailer(meta Metadata) string {
	validation := "FALSE"
	if meta.Validation {
		validation = "TRUE"
	}

	var sb strings.Builder

	sb.WriteString(TagStart + "\n")

	if meta.Version != "" {
		fmt.Fprintf(&sb, "%s: %s\n", KeyVersion, meta.Version)
	}

	fmt.Fprintf(&sb, "%s: %s\n", KeyValidation, validation)
	fmt.Fprintf(&sb, "%s: %s\n", KeyLastModify, meta.LastModify.UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "%s: %s\n", KeyHash, meta.Hash)
	sb.WriteString(TagEnd)

	return sb.String()
}

// Verify reports whether the body of a dashboard still matches the hash in its
// trailer, i.e. whether it was edited after rendering.
func Verify(content string) (bool, error) {
	meta, body := Extract(content)

	switch {
	case meta == nil:
		return false, ErrNoMetadataBlock
	case meta.Hash == "":
		return false, ErrNoHashFound
	}

	if got := CalculateHash(body); got != meta.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, got)
	}

	return true, nil
}
