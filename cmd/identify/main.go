package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nerdy2010/FlipAI/config"
	"github.com/nerdy2010/FlipAI/internal/llm"
)

func main() {
	imagePath := flag.String("image", "", "Path to a product photo (JPEG)")
	flag.Parse()

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "-image is required")
		os.Exit(1)
	}

	image, err := os.ReadFile(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	config.LoadEnvFile()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gemini, err := llm.NewGemini(ctx, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	name, err := gemini.IdentifyProduct(ctx, image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(name)
}
