// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package extract

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrMalformedMark reports a specimen mark token that does not follow
// the <prefix><digits><letter> grammar. Extraction skips the offending
// line and continues; nothing downstream ever sees a partial mark.
var ErrMalformedMark = errors.New("malformed specimen mark")

// markRe decomposes a full specimen mark. The prefix is everything up
// to and including the last separator before the trailing digit run,
// e.g. "20250621-45D-1A" -> ("20250621-45D-", "1", "A").
var markRe = regexp.MustCompile(`^(.+?-)(\d+)([A-Z])$`)

// SplitMark splits a composite specimen mark token into its prefix,
// sequence number, and suffix letter. The three parts concatenate back
// to the original token exactly.
func SplitMark(token string) (prefix, number, suffix string, err error) {
	m := markRe.FindStringSubmatch(token)
	if m == nil {
		return "", "", "", fmt.Errorf("%w: %q", ErrMalformedMark, token)
	}
	return m[1], m[2], m[3], nil
}
