package server

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/fuzzdict/internal/logger"
	"github.com/bastiangx/fuzzdict/pkg/config"
	"github.com/bastiangx/fuzzdict/pkg/dictionary"
	"github.com/bastiangx/fuzzdict/pkg/rank"
)

var log = logger.New("ipc")

// Server handles the IPC for fuzzy dictionary search
type Server struct {
	store *dictionary.Store
	cfg   *config.Config
	dec   *msgpack.Decoder
	enc   *msgpack.Encoder
}

// NewServer creates a search server using stdin/stdout for IPC
func NewServer(store *dictionary.Store, cfg *config.Config) *Server {
	return NewServerIO(store, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a search server over arbitrary streams
func NewServerIO(store *dictionary.Store, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		store: store,
		cfg:   cfg,
		dec:   msgpack.NewDecoder(r),
		enc:   msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil when the input
// stream is closed.
func (s *Server) Start() error {
	log.Debug("Starting IPC server")

	for {
		var request SearchRequest
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleSearch(request)
	}
}

// handleSearch processes a single search request. It validates the limit,
// runs a fuzzy scan (or a prefix completion when requested), and writes
// the response with timing info.
func (s *Server) handleSearch(request SearchRequest) {
	limit := request.Limit
	if limit < 0 {
		s.sendError(request.ID, rank.ErrNegativeLimit.Error(), 400)
		log.Debugf("Negative limit in request %s", request.ID)
		return
	}
	if limit == 0 || limit > s.cfg.Rank.MaxLimit {
		limit = s.cfg.Rank.MaxLimit
	}

	start := time.Now()
	var matches []SearchMatch
	if request.Prefix {
		for _, word := range s.store.CompletePrefix(request.Query, limit) {
			matches = append(matches, SearchMatch{Word: word})
		}
	} else {
		ranked, err := rank.RankParallel(context.Background(), s.store, request.Query, limit, s.cfg.Rank.Workers)
		if err != nil {
			s.sendError(request.ID, err.Error(), 500)
			log.Errorf("Ranking request %s: %v", request.ID, err)
			return
		}
		for _, m := range ranked {
			matches = append(matches, SearchMatch{Word: m.Word, Score: m.Score})
		}
	}
	elapsed := time.Since(start)

	response := SearchResponse{
		ID:        request.ID,
		Matches:   matches,
		Count:     len(matches),
		TimeTaken: elapsed.Microseconds(),
	}
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	errResponse := SearchError{
		ID:    id,
		Error: message,
		Code:  code,
	}
	if err := s.enc.Encode(errResponse); err != nil {
		log.Errorf("Encoding error response: %v", err)
	}
}
