// Package report renders advisory findings and the completion line.
//
// Warnings go to the error stream and informational advisories plus the
// completion line go to the output stream. On an interactive terminal the
// severity tag is colored; the text itself never changes.
package report
