// Package output renders exticons reports (generation summaries, duplicate
// check reports and template listings) as rich terminal output, plain text
// or JSON.
//
// FormatAuto picks terminal output when writing to a color-capable TTY and
// plain text otherwise; NO_COLOR forces plain text.
package output
