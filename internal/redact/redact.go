// Package redact removes credentials and other sensitive details from strings
// before they are logged. Upstream failures often echo request URLs, header
// values or local paths back in their messages; this package keeps those out
// of the logs.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

// rule replaces every match of pattern with replacement, which may use
// $1-style references to keep non-sensitive context.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; provider key formats come first so the
// generic patterns never see a partially redacted key.
var rules = []rule{
	// Anthropic keys (sk-ant-...) and Google API keys (AIza...)
	{regexp.MustCompile(`sk-ant-[A-Za-z0-9_\-]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`), RedactedKeyPlaceholder},

	// Credential carrying headers, with or without a Bearer scheme
	{
		regexp.MustCompile(`(?i)(x-api-key|x-goog-api-key|authorization)(["'\s:=]+)(?:bearer\s+)?[A-Za-z0-9_\-.~+/]{8,}`),
		"$1$2" + RedactedCredentialPlaceholder,
	},

	// key=... query parameters
	{regexp.MustCompile(`(?i)([?&]key=)[^&\s"']+`), "$1" + RedactedKeyPlaceholder},

	// Generic key/token/secret assignments
	{
		regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(["'\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},

	// user:password@ in URLs
	{regexp.MustCompile(`(?i)([a-z][a-z0-9+.\-]*://)[^/@\s]+@`), "$1" + RedactedCredentialPlaceholder + "@"},

	{regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},

	// Absolute local paths; URL paths follow a host and are left alone
	{regexp.MustCompile(`(^|[\s"'(=])((?:/[\w.\-]+){2,})`), "$1" + RedactedPathPlaceholder},

	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
