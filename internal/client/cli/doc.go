// Package cli provides the interactive jobpilot command-line client.
//
// It wires configuration, the backend API client, the resume board and the
// card renderers into one command tree. The same tree serves two modes:
//
//   - one-shot: `jobpilot resumes list` runs a single command and exits;
//   - interactive: with no arguments the CLI starts a REPL whose prompt shows
//     the selected user and the backend status (online/offline), kept current
//     by a background watcher.
//
// Commands:
//
//	user create|show|update     manage the profile
//	use <id>                    select the user to act for
//	resumes list|show|upload|delete|toggle
//	jobs search|apply|applications
//	notify send|list            Telegram notifications
//	webhook setup|delete        Telegram webhook
//	overview                    dashboard counters
//	ping                        backend health
//
// Uploads accept a local path or an s3://bucket/key reference.
//
// The entry point is App.Run, which blocks until the command completes or the
// user leaves the REPL.
package cli
