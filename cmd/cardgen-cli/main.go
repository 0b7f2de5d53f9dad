package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/orchestrator"
	"github.com/goliatone/go-cardgen/pkg/prompt"
)

func main() {
	title := flag.String("title", "", "card title")
	description := flag.String("description", "", "card description")
	variant := flag.String("variant", "default", "card variant (default, featured, interactive, compact, status)")
	size := flag.String("size", "default", "card size (small, default, large)")
	status := flag.String("status", "", "card status for the status variant (success, warning, error, info)")
	showValidation := flag.Bool("show-validation", false, "render the validation alert when content is invalid")
	preset := flag.String("preset", "", "render a named preset instead of flag-supplied content")
	listPresets := flag.Bool("list-presets", false, "list available preset names and exit")
	renderer := flag.String("renderer", "vanilla", "renderer to use (vanilla, term)")
	output := flag.String("output", "", "output file (stdout if empty)")
	printPrompt := flag.Bool("prompt", false, "print the component-generation prompt and exit")
	flag.Parse()

	if *printPrompt {
		text, err := prompt.Build(prompt.DefaultConfig())
		if err != nil {
			log.Fatalf("Failed to build prompt: %v", err)
		}
		fmt.Print(text)
		return
	}

	gen := orchestrator.New()

	if *listPresets {
		for _, name := range gen.Presets().Names() {
			fmt.Println(name)
		}
		return
	}

	req := orchestrator.Request{
		Preset:   *preset,
		Renderer: *renderer,
	}
	if *preset == "" {
		input, err := parseInput(*title, *description, *variant, *size, *status, *showValidation)
		if err != nil {
			log.Fatalf("Invalid input: %v", err)
		}
		req.Input = input
	}

	out, err := gen.Generate(context.Background(), req)
	if err != nil {
		log.Fatalf("Failed to generate card: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Card written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

func parseInput(title, description, variant, size, status string, showValidation bool) (card.Input, error) {
	parsedVariant, err := card.ParseVariant(variant)
	if err != nil {
		return card.Input{}, err
	}
	parsedSize, err := card.ParseSize(size)
	if err != nil {
		return card.Input{}, err
	}
	parsedStatus, err := card.ParseStatus(status)
	if err != nil {
		return card.Input{}, err
	}
	return card.Input{
		Title:          title,
		Description:    description,
		Variant:        parsedVariant,
		Size:           parsedSize,
		Status:         parsedStatus,
		ShowValidation: showValidation,
	}, nil
}
