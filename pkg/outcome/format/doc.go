// Package format turns printf-style message templates into outcome messages.
// It is the only place templates are interpreted and it never panics: a
// malformed template is downgraded to a diagnostic string instead.
package format
