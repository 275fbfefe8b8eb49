// Package main demonstrates picking one item by typing part of it.
package main

import (
	"fmt"
	"log"

	"github.com/plyx/prompt"
)

type command struct {
	name        string
	description string
}

var commands = []command{
	{name: "help", description: "Show help information"},
	{name: "list", description: "List all items"},
	{name: "create", description: "Create a new item"},
	{name: "delete", description: "Delete an existing item"},
	{name: "update", description: "Update an existing item"},
	{name: "status", description: "Show current status"},
}

func main() {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.name)
	}

	// "te" ranks "create", "delete" and "update" in their original order;
	// "de" puts "delete" first because it starts with the query.
	choice, err := prompt.SearchSelect("Command:", names, "Type to narrow the list, Enter picks the top match")
	if err != nil {
		log.Fatal(err)
	}

	for _, c := range commands {
		if c.name == choice {
			fmt.Printf("%s: %s\n", c.name, c.description)
		}
	}

	// FilterFunc ranks any value by a text key, without a terminal.
	for _, c := range prompt.FilterFunc(commands, func(c command) string { return c.description }, "item") {
		fmt.Println("matches \"item\":", c.name)
	}
}
