// Package hylog builds the structured logger every other package writes
// through: two selectable sinks (console, file, or both) over
// github.com/rs/zerolog.
package hylog
