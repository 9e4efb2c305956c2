package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nerdy2010/FlipAI/config"
	"github.com/nerdy2010/FlipAI/internal/serpapi"
)

func main() {
	engine := flag.String("engine", "shopping", "Engine: images, lens or shopping")
	query := flag.String("q", "", "Search query (images, shopping)")
	imageURL := flag.String("url", "", "Image URL (lens)")
	num := flag.Int("num", 10, "Result count cap")
	flag.Parse()

	config.LoadEnvFile()
	client := serpapi.NewClient(serpapi.ClientOpts{APIKey: os.Getenv("SERPAPI_API_KEY")})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		results any
		err     error
	)
	switch *engine {
	case "images":
		results, err = client.SearchImages(ctx, *query, *num)
	case "lens":
		results, err = client.SearchLens(ctx, *imageURL)
	case "shopping":
		results, err = client.SearchShopping(ctx, *query, *num)
	default:
		fmt.Fprintf(os.Stderr, "unknown engine: %s\n", *engine)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(results, "", "  ")
	fmt.Println(string(out))
}
