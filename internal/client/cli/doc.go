// Package cli implements the interactive Inkveil client: a small REPL
// over the batch redaction workflow.
//
// Commands
//
//	add <path ...>   — queue PDF files or folders for redaction
//	remove <id>      — drop one queued file by id
//	list             — show the queued files
//	start            — submit the batch and save the redacted output
//	status           — show per-file progress and the batch summary
//	clear            — discard the batch locally and on the service
//	history          — show recent finished runs
//	intro [off]      — show the walkthrough; "off" hides it for good
//	help             — list commands
//	exit | quit      — leave the program
//
// The app keeps a connectivity mode (online/offline) refreshed by a
// background health watcher; submission is refused while offline.
package cli
