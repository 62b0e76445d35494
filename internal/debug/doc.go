// Package debug provides optional file-based debug logging.
//
// When the FLEX_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
// FLEX_DEBUG_DUMP additionally enables value dumps in log lines.
package debug
