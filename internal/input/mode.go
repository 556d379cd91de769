package input

import (
	"regexp"
	"runtime"
)

// Mode selects which family of listeners is bound to the surface.
type Mode int

const (
	PointerMode Mode = iota
	TouchMode
)

// ModeFor returns TouchMode when useTouch is set.
func ModeFor(useTouch bool) Mode {
	if useTouch {
		return TouchMode
	}
	return PointerMode
}

func (m Mode) String() string {
	if m == TouchMode {
		return "touch"
	}
	return "pointer"
}

// Detector guesses whether touch input should be the default.
type Detector interface {
	TouchPreferred() bool
}

// Static is a Detector with a fixed answer.
type Static bool

func (s Static) TouchPreferred() bool { return bool(s) }

var (
	androidRe = regexp.MustCompile(`(?i)android`)
	iosRe     = regexp.MustCompile(`(?i)iPad|iPhone|iPod|Mac`)
)

// UserAgent detects the platform from a user-agent string.
type UserAgent string

// Platform returns "Android", "iOS" or "Other". iPadOS identifies as a Mac,
// so any Mac counts as iOS.
func (ua UserAgent) Platform() string {
	switch {
	case androidRe.MatchString(string(ua)):
		return "Android"
	case iosRe.MatchString(string(ua)):
		return "iOS"
	}
	return "Other"
}

// TouchPreferred is true only for iOS-like platforms; Android delivers
// usable pointer events.
func (ua UserAgent) TouchPreferred() bool {
	return ua.Platform() == "iOS"
}

// RuntimeUserAgent builds a user-agent-like string for the running binary.
func RuntimeUserAgent() UserAgent {
	switch runtime.GOOS {
	case "android":
		return "Linux; Android"
	case "ios":
		return "iPhone; CPU iPhone OS"
	case "darwin":
		return "Macintosh; Mac OS X"
	}
	return UserAgent(runtime.GOOS)
}
