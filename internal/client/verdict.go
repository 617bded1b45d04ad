package client

import (
	"fmt"
	"strings"
)

// Verdict classifies the site's response to a submitted answer.
type Verdict int

const (
	// VerdictCorrect means the answer was accepted.
	VerdictCorrect Verdict = iota
	// VerdictWrong means the answer was rejected.
	VerdictWrong
	// VerdictTooFast means the submission was throttled; try again later.
	VerdictTooFast
	// VerdictAnswered means this part was already completed.
	VerdictAnswered
	// VerdictNoAnswer means an empty answer was submitted.
	VerdictNoAnswer
)

// String returns the cache-stable name of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictWrong:
		return "wrong"
	case VerdictTooFast:
		return "too_fast"
	case VerdictAnswered:
		return "answered"
	case VerdictNoAnswer:
		return "no_answer"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// ParseVerdict is the inverse of Verdict.String, used when reading cached
// submissions.
func ParseVerdict(s string) (Verdict, error) {
	switch s {
	case "correct":
		return VerdictCorrect, nil
	case "wrong":
		return VerdictWrong, nil
	case "too_fast":
		return VerdictTooFast, nil
	case "answered":
		return VerdictAnswered, nil
	case "no_answer":
		return VerdictNoAnswer, nil
	}
	return 0, fmt.Errorf("client: unknown verdict %q", s)
}

// Cacheable reports whether a verdict is worth remembering. Throttle and
// already-answered responses say nothing about the answer itself.
func (v Verdict) Cacheable() bool {
	return v == VerdictCorrect || v == VerdictWrong
}

// ClassifyResponse maps the site's response text to a Verdict. Text that
// matches none of the known phrases is a hard error: it means the site
// changed or the session is broken, and silently guessing would be worse.
func ClassifyResponse(msg string) (Verdict, error) {
	switch {
	case strings.Contains(msg, "That's the right answer"):
		return VerdictCorrect, nil
	case strings.Contains(msg, "That's not the right answer"):
		return VerdictWrong, nil
	case strings.Contains(msg, "You gave an answer too recently"):
		return VerdictTooFast, nil
	case strings.Contains(msg, "Did you already complete it"),
		strings.Contains(msg, "You don't seem to be solving the right level"):
		return VerdictAnswered, nil
	case strings.Contains(msg, "You need to actually provide an answer"):
		return VerdictNoAnswer, nil
	}
	return 0, fmt.Errorf("client: unrecognized response from adventofcode.com; please report this at https://github.com/Apsurt/aocenv/issues: %q", msg)
}
