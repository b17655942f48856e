// Package cli handles cmd line input for DBG and testing rule sets interactively
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/bastiangx/rephrase/internal/logger"
	"github.com/bastiangx/rephrase/pkg/engine"
)

// InputHandler reads sentences from stdin and prints the spans the rule
// set matches, with their ranked suggestions. maxLength bounds accepted
// input and suggestLimit caps printed suggestions per span.
type InputHandler struct {
	engine       *engine.Engine
	log          *charmlog.Logger
	maxLength    int
	suggestLimit int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(eng *engine.Engine, maxLength, limit int) *InputHandler {
	return &InputHandler{
		engine:       eng,
		log:          logger.New("cli"),
		maxLength:    maxLength,
		suggestLimit: limit,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed sentence to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.log.Print("Rephrase CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a sentence and press Enter to see corrections (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		sentence, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		h.handleInput(sentence)
	}
}

// handleInput checks a single sentence against the rule set and prints the
// matched spans and suggestions to the log.
func (h *InputHandler) handleInput(sentence string) {
	h.requestCount++

	if len(sentence) > h.maxLength {
		h.log.Errorf("Sentence too long: %d bytes", len(sentence))
		return
	}

	start := time.Now()
	spans, err := h.engine.Process(sentence)
	elapsed := time.Since(start)
	if err != nil {
		h.log.Errorf("Processing sentence: %v", err)
		return
	}
	h.log.Debugf("Took [ %v ] for %d rule matches", elapsed, len(spans))

	if len(spans) == 0 {
		h.log.Printf("No corrections for: '%s'", sentence)
		return
	}

	for _, sp := range spans {
		clText := fmt.Sprintf("\033[38;5;203m%s\033[0m", sp.Text())
		h.log.Printf("[%s] %s (tokens %d..%d)", sp.RuleName, clText, sp.Start, sp.End)
		if sp.Description != "" {
			h.log.Printf("    %s", sp.Description)
		}
		suggestions := sp.Suggestions
		if h.suggestLimit > 0 && len(suggestions) > h.suggestLimit {
			suggestions = suggestions[:h.suggestLimit]
		}
		for i, s := range suggestions {
			clSugg := fmt.Sprintf("\033[38;5;75m%s\033[0m", s)
			h.log.Printf("%2d. %s", i+1, clSugg)
		}
	}
}
