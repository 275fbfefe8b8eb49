// Package main demonstrates basic usage of the prompt library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/plyx/prompt"
)

func main() {
	// One Prompter can run several prompts in a row
	p, err := prompt.New()
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	fmt.Println("Basic Prompt Example")
	fmt.Println("Press Enter to accept the default, Ctrl+C to quit")
	fmt.Println()

	for {
		name, err := p.TextInput("Project name:", "my-app")
		if err != nil {
			log.Fatal(err)
		}

		ok, err := p.Confirm(fmt.Sprintf("Create %q?", name))
		if err != nil {
			if errors.Is(err, prompt.ErrInterrupted) {
				return
			}
			log.Fatal(err)
		}
		if ok {
			fmt.Printf("Creating %s...\n", name)
			return
		}
	}
}
