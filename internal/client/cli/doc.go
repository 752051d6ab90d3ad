// Package cli implements the interactive StoryHub client: a small REPL that
// drives the auth and story services and prints results to the terminal.
//
// Commands
//
//	Not signed in:
//	  - help             — show available commands
//	  - signup           — create an account
//	  - login            — authenticate
//	  - list             — fetch and show all stories
//	  - exit | quit      — leave the program
//
//	Signed in (additionally):
//	  - submit           — post a new story
//	  - edit <id>        — edit an own story
//	  - delete <id>      — delete an own story
//	  - fav <id>         — mark a story as favorite
//	  - unfav <id>       — unmark a favorite
//	  - favorites        — show favorites
//	  - mine             — show own stories
//	  - logout           — sign out and forget the stored session
//
// At startup the app attempts a best-effort session restore from the local
// credential store; failures fall back to an anonymous session silently.
package cli
