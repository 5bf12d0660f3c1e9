// Command chat runs the lead-qualification agent as an interactive terminal
// conversation. Type "exit" or "quit" to leave.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Manny2706/servicehire/internal/agent"
	"github.com/Manny2706/servicehire/internal/config"
	"github.com/Manny2706/servicehire/internal/knowledge"
	"github.com/Manny2706/servicehire/internal/leads"
	"github.com/Manny2706/servicehire/internal/model/convo"
	"github.com/Manny2706/servicehire/internal/service/ai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var plans *knowledge.MemoryStore
	if cfg.Knowledge.Path != "" {
		plans, err = knowledge.LoadFile(cfg.Knowledge.Path)
		if err != nil {
			log.Fatalf("failed to load knowledge base: %v", err)
		}
	} else {
		plans = knowledge.NewMemoryStore(knowledge.Seed())
	}
	if err := knowledge.Validate(plans, "Basic", "Pro"); err != nil {
		log.Fatalf("invalid knowledge base: %v", err)
	}

	provider, err := ai.NewService(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize language provider: %v", err)
	}

	sink := leads.NewMemoryStore()
	ag := agent.New(provider, plans, sink)

	runChatLoop(ctx, ag)
}

func runChatLoop(ctx context.Context, ag *agent.Agent) {
	scanner := bufio.NewScanner(os.Stdin)
	state := convo.State{}

	for {
		fmt.Print("User: ")
		if !scanner.Scan() {
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if lowered := strings.ToLower(input); lowered == "exit" || lowered == "quit" {
			fmt.Println("Exiting chat.")
			return
		}

		next, err := ag.Turn(ctx, state, input)
		state = next
		if err != nil {
			log.Printf("[chat] turn failed: %v", err)
			fmt.Println("\nAgent: Sorry, something went wrong on our side. Could you say that again?")
			continue
		}

		fmt.Println("\nAgent:", state.Response)
	}
}
