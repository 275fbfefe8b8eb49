// Package main demonstrates the feature checklist.
package main

import (
	"fmt"
	"log"

	"github.com/plyx/prompt"
)

func main() {
	features := []prompt.Feature{
		{Key: "tinyvg", Label: "TinyVG", Description: "vector graphics"},
		{Key: "built-in-shaders", Label: "Built-in shaders", Description: "ready-made effects"},
		{Key: "shader-pipeline", Label: "Shader pipeline", Description: "compile your own shaders"},
		{Key: "text-styling", Label: "Text styling", Description: "rich text markup"},
	}

	// Text styling is already in place and cannot be unchecked.
	keys, err := prompt.FeatureSelect(
		"Select features (space to select, arrow-keys to navigate):",
		features,
		"Don't worry, you can activate these later",
		[]string{"tinyvg"},
		[]string{"text-styling"},
		"Create!",
		prompt.WithColorScheme(prompt.ThemeAccessible),
	)
	if err != nil {
		log.Fatal(err)
	}

	if len(keys) == 0 {
		fmt.Println("No features selected.")
		return
	}
	for _, key := range keys {
		fmt.Println("enable", key)
	}
}
