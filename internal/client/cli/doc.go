// Package cli provides the interactive usergate console.
//
// It drives the same auth gate, directory and list state as the web panel
// and shares its session store, so a login made in one is seen by the other
// on its next start.
//
// Commands:
//   - login / logout
//   - list, page <n>, search [term]
//   - show <id>, edit <id>, delete <id>
//   - status, help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
