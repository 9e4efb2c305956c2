package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/dedent"
	"github.com/nerdy2010/FlipAI/config"
	"github.com/nerdy2010/FlipAI/internal/llm"
	"github.com/nerdy2010/FlipAI/internal/market"
	"github.com/nerdy2010/FlipAI/internal/pipeline"
	"github.com/nerdy2010/FlipAI/internal/serpapi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const searchTimeout = 2 * time.Minute

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	imagePath := flag.String("image", "", "Path to a product photo (JPEG)")
	text := flag.String("text", "", "Free-text product description")
	referenceURL := flag.String("url", "", "Reference product image URL")
	targetPrice := flag.String("price", "", "Target price")
	chatMode := flag.Bool("chat", false, "Start an interactive chat after the search")
	flag.Parse()

	config.LoadEnvFile()
	if missing := config.CheckRequired(); len(missing) > 0 {
		log.Fatal().Err(&market.ConfigError{Missing: missing}).Msg("configuration incomplete")
	}

	if *imagePath == "" && *text == "" && *referenceURL == "" {
		fmt.Fprintln(os.Stderr, "at least one of -image, -text or -url is required")
		flag.Usage()
		os.Exit(1)
	}

	var image []byte
	if *imagePath != "" {
		var err error
		image, err = os.ReadFile(*imagePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *imagePath).Msg("failed to read image")
		}
	}

	price, _ := strconv.ParseFloat(*targetPrice, 64)

	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	gemini, err := llm.NewGemini(ctx, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Gemini client")
	}
	serp := serpapi.NewClient(serpapi.ClientOpts{APIKey: os.Getenv("SERPAPI_API_KEY")})

	p := pipeline.New(gemini, serp, pipeline.Options{})
	result, err := p.Run(ctx, pipeline.Input{
		Image:        image,
		Text:         *text,
		ReferenceURL: *referenceURL,
		TargetPrice:  price,
	})
	if err != nil {
		var notFound *market.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, notFound.Error())
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("search failed")
	}

	printResult(result)

	if *chatMode {
		runChat(gemini, result)
	}
}

func printResult(result *market.AnalysisResult) {
	header := strings.TrimSpace(dedent.Dedent(`
		Product:       %s
		Method:        %s
		Average price: %s
		%s
	`))
	fmt.Printf(header+"\n\n", result.ProductName, result.IdentifiedModel,
		result.MarketAnalysis.AverageMarketPrice, result.VisualAnalysis)

	for i, o := range result.Options {
		fmt.Printf("%2d. $%.2f  %s - %s\n    %s\n", i+1, o.Price, o.Vendor, o.Description, o.URL)
	}
}

func runChat(gemini *llm.Gemini, result *market.AnalysisResult) {
	fmt.Println("\nChat with FlipAI about these results (ctrl-d to quit)")
	var history []market.ChatMessage
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		reply := gemini.Chat(ctx, history, message, result)
		cancel()

		fmt.Println(reply)
		history = append(history,
			market.ChatMessage{Role: "user", Text: message},
			market.ChatMessage{Role: "model", Text: reply},
		)
	}
}
