package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/shopmate-ai/shopmate/agent/contract"
	resolverx "github.com/shopmate-ai/shopmate/agent/resolver"
	storex "github.com/shopmate-ai/shopmate/agent/store"
	toolx "github.com/shopmate-ai/shopmate/agent/tool"
	configx "github.com/shopmate-ai/shopmate/pkg/config"
	_ "github.com/shopmate-ai/shopmate/pkg/logger/autoload"
	ollamax "github.com/shopmate-ai/shopmate/pkg/ollama"
)

type AppConfig struct {
	UserID string `envconfig:"USER_ID" split_words:"true" default:"user1"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")
	ollamaCfg := configx.MustNew[ollamax.Config]("OLLAMA")

	ctx := context.Background()

	db := storex.MustOpen(ctx)
	defer db.Close()

	stats, err := db.Stats(ctx, appCfg.UserID)
	if err != nil {
		log.Fatal().Err(err).Msg("store stats")
	}
	log.Info().
		Int("products", stats.Products).
		Int("categories", stats.Categories).
		Int("cart_items", stats.CartItems).
		Msg("store seeded")

	tools := toolx.New(db, appCfg.UserID)
	pattern := resolverx.NewPattern(tools)
	llm := ollamax.NewClient(*ollamaCfg)

	var assistant contractx.Resolver = resolverx.NewModel(llm, tools, pattern)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := llm.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Msg("completion service unreachable, pattern mode")
	} else {
		log.Info().Str("model", ollamaCfg.Model).Msg("completion service online")
	}
	cancel()

	runChat(ctx, assistant)
}

// runChat is the thin stand-in for the presentation layer: read a line,
// resolve it, print the response.
func runChat(ctx context.Context, assistant contractx.Resolver) {
	fmt.Println("AI Shopping Assistant (type 'quit' to exit)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}
		fmt.Println(assistant.Resolve(ctx, input))
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("read input")
	}
}
