// Package prompt provides interactive terminal prompts for command-line tools
// that need structured answers from a user without a line-editing library.
//
// Prompts:
//
//   - Confirm: yes/no question
//   - TextInput: single line of text with a default
//   - SearchSelect: pick one item by typing, best match wins
//   - FeatureSelect: checklist with locked and pre-checked items and an action row
//   - AddWidget: checklist, font search and Done row in one frame
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/plyx/prompt"
//	)
//
//	func main() {
//		p, err := prompt.New()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer p.Close()
//
//		name, err := p.TextInput("Project name:", "my-app")
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("Creating", name)
//	}
//
// Each prompt is also available as a package-level function that opens and
// closes the terminal around a single call:
//
//	ok, err := prompt.Confirm("Download the Android SDK?")
//
// Search Ranking:
//
// Typing filters the candidates case-insensitively. Candidates that start
// with the query come first, then candidates that merely contain it, each
// group in its original order. See Filter.
//
// Key Bindings:
//
//   - Enter: commit, confirm, or add the top font match
//   - Space: toggle a checklist row (printable text elsewhere)
//   - Up/Down: move between rows and zones
//   - Backspace: delete the last typed character
//   - Esc: clear the notice or the search query; never cancels
//   - Ctrl+C: restore the terminal and exit with status 130
//
// Terminal Handling:
//
// Every prompt puts the terminal in raw mode for its lifetime and restores
// it on every exit path, including Ctrl+C and termination signals. Ctrl+C
// ends the process through os.Exit(130) after restoring and releasing the
// terminal; WithExitFunc replaces that, in which case the prompt returns
// ErrInterrupted. SIGTERM and SIGHUP exit with 128 plus the signal number.
//
// Prompts draw on the controlling terminal rather than stdout, so a program
// can print its results on stdout and still be used in a pipe or a command
// substitution.
//
// Thread Safety:
//
// Only one prompt may own the terminal at a time. A Prompter must not be used
// from several goroutines.
package prompt
