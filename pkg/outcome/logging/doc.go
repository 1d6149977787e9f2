// Package logging adapts log/slog to the outcome.Logger collaborator.
package logging
