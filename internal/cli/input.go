// Package cli handles cmd line input and ranked matches for DBG and testing various features
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/bastiangx/fuzzdict/internal/logger"
	"github.com/bastiangx/fuzzdict/pkg/dictionary"
	"github.com/bastiangx/fuzzdict/pkg/rank"
)

// InputHandler processes queries from stdin and prints ranked matches.
// It is a plain line-oriented alternative to the TUI, mainly for testing
// ranking behavior and timing without a full screen.
type InputHandler struct {
	store      *dictionary.Store
	matchLimit int
	workers    int
	log        *charmlog.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(store *dictionary.Store, limit, workers int) *InputHandler {
	return &InputHandler{
		store:      store,
		matchLimit: limit,
		workers:    workers,
		log:        logger.NewWithConfig("cli", charmlog.GetLevel(), false, false, charmlog.TextFormatter),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed query to handleQuery() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.log.Print("Fuzzdict CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type something and press Enter to see the closest words (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleQuery(query)
	}
}

// handleQuery ranks a single query against the dictionary and prints the
// results with their scores and the scan timing.
func (h *InputHandler) handleQuery(query string) {
	start := time.Now()
	matches, err := rank.RankParallel(context.Background(), h.store, query, h.matchLimit, h.workers)
	elapsed := time.Since(start)

	if err != nil {
		h.log.Errorf("Ranking failed for query '%s': %v", query, err)
		return
	}

	h.log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(matches) == 0 {
		h.log.Warnf("No matches found for query: '%s'", query)
		return
	}

	h.log.Printf("Found %d matches for query '%s':", len(matches), query)
	for i, m := range matches {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", m.Word)
		h.log.Printf("%2d. %-40s (score: %.3f)", i+1, clWord, m.Score)
	}
}
