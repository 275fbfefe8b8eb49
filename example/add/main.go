// Package main demonstrates the combined feature and font widget.
package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/plyx/prompt"
)

func main() {
	features := []prompt.Feature{
		{Key: "tinyvg", Label: "TinyVG", Description: "vector graphics"},
		{Key: "shader-pipeline", Label: "Shader pipeline", Description: "compile your own shaders"},
	}
	fonts := []string{"Roboto", "Open Sans", "Lato", "Montserrat", "Poppins", "Fira Code", "Inter"}

	logger := zap.NewNop()
	if os.Getenv("DEBUG") != "" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	p, err := prompt.New(
		prompt.WithLogger(logger),
		prompt.WithNotice("Already in the project"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	result, err := p.AddWidget("Add to project:", features, fonts,
		[]string{"tinyvg"}, []string{"Roboto"}, "Up/Down to move, Enter to add a font")
	if err != nil {
		log.Fatal(err)
	}

	if len(result.Features) == 0 && len(result.Fonts) == 0 {
		fmt.Println("Nothing to add.")
		return
	}
	for _, key := range result.Features {
		fmt.Println("feature:", key)
	}
	for _, font := range result.Fonts {
		fmt.Println("font:", font)
	}
}
