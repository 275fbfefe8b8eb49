// Package main provides a file explorer example using the search select prompt.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/plyx/prompt"
)

const parentDir = "../"

func main() {
	fmt.Println("File Explorer Example")
	fmt.Println("=====================")
	fmt.Println("Type to filter, Enter opens the top match.")
	fmt.Println("Directories end in '/', '../' goes up, Ctrl+C quits.")
	fmt.Println()

	p, err := prompt.New()
	if err != nil {
		log.Fatalf("failed to create prompt: %v", err)
	}
	defer p.Close()

	for {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "unknown"
		}

		entries, err := listDir(".")
		if err != nil {
			log.Fatal(err)
		}

		choice, err := p.SearchSelect(fmt.Sprintf("%s>", filepath.Base(cwd)), entries, "")
		if err != nil {
			log.Fatal(err)
		}

		if strings.HasSuffix(choice, "/") {
			if err := os.Chdir(strings.TrimSuffix(choice, "/")); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			continue
		}

		showFile(choice)

		more, err := p.Confirm("Open another file?")
		if err != nil {
			log.Fatal(err)
		}
		if !more {
			fmt.Println("Goodbye!")
			return
		}
	}
}

// listDir returns the parent entry followed by the directory contents,
// directories marked with a trailing slash.
func listDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	names := []string{parentDir}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	return names, nil
}

func showFile(name string) {
	content, err := os.ReadFile(name)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Limit output for large files
	if len(content) > 1000 {
		fmt.Printf("File content (first 1000 bytes):\n%s\n... (truncated)\n", content[:1000])
	} else {
		fmt.Printf("File content:\n%s\n", content)
	}
}
