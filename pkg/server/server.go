package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordspell/internal/logger"
	"github.com/bastiangx/wordspell/internal/utils"
	"github.com/bastiangx/wordspell/pkg/config"
	"github.com/bastiangx/wordspell/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// EngineSource hands out the engine to use for the next request.
type EngineSource interface {
	Engine() suggest.ISuggester
}

// Server handles the IPC for spell checking.
type Server struct {
	source       EngineSource
	config       config.ServerConfig
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(source EngineSource, cfg config.ServerConfig) *Server {
	return NewServerWithIO(source, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w.
func NewServerWithIO(source EngineSource, cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	return &Server{
		source:  source,
		config:  cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		logger:  logger.New("server"),
	}
}

// Start processes requests until the input ends. A clean end of input returns nil.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			return fmt.Errorf("failed to read request: %w", err)
		}

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid request", CodeBadRequest)
			continue
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(req Request) {
	s.requestCount++
	engine := s.source.Engine()
	if engine == nil {
		s.sendError(req.ID, "no dictionary loaded", CodeInternal)
		return
	}

	op := strings.ToLower(req.Op)
	switch op {
	case OpStats:
		s.handleStats(req, engine)
		return
	case OpCheck, OpSuggest, OpComplete, OpExpand, OpPhonetic:
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown op: %q", req.Op), CodeBadRequest)
		return
	}
	if err := utils.ValidateWord(req.Word, s.config.MaxWordLen); err != nil {
		s.logger.Debugf("Rejected %s request %q: %v", op, req.ID, err)
		s.sendError(req.ID, err.Error(), CodeBadRequest)
		return
	}

	start := time.Now()
	switch op {
	case OpCheck:
		res := engine.Check(req.Word)
		s.sendResponse(CheckResponse{
			ID:        req.ID,
			Known:     res.Known,
			Bases:     res.PossibleBases,
			TimeTaken: since(start),
		})
	case OpSuggest:
		cands := engine.Suggest(req.Word, s.limit(req.Limit))
		ranks := utils.CreateRankList(cands)
		out := make([]RankedWord, len(cands))
		for i, c := range cands {
			out[i] = RankedWord{Word: c.Word, Rank: ranks[i], Distance: c.EditDistance, Source: c.Source.String()}
		}
		s.sendResponse(ListResponse{ID: req.ID, Suggestions: out, Count: len(out), TimeTaken: since(start)})
	case OpComplete:
		words := engine.Complete(req.Word, s.limit(req.Limit))
		ranks := utils.CreateRankList(words)
		out := make([]RankedWord, len(words))
		for i, w := range words {
			out[i] = RankedWord{Word: w, Rank: ranks[i]}
		}
		s.sendResponse(ListResponse{ID: req.ID, Suggestions: out, Count: len(out), TimeTaken: since(start)})
	case OpExpand:
		forms := utils.Dedupe(engine.Dictionary().ExpandText(req.Word))
		s.sendResponse(ExpandResponse{ID: req.ID, Forms: forms, Count: len(forms), TimeTaken: since(start)})
	case OpPhonetic:
		code := engine.Dictionary().PhoneticCode(req.Word)
		s.sendResponse(PhoneticResponse{ID: req.ID, Code: code, TimeTaken: since(start)})
	}
}

func (s *Server) handleStats(req Request, engine suggest.ISuggester) {
	start := time.Now()
	s.sendResponse(StatsResponse{
		ID:         req.ID,
		Dictionary: engine.Dictionary().Stats(),
		Engine:     engine.Stats(),
		Requests:   s.requestCount,
		TimeTaken:  since(start),
	})
}

// limit applies the configured default and maximum to a requested limit.
func (s *Server) limit(requested int) int {
	if requested < 1 {
		requested = s.config.DefaultLimit
	}
	if s.config.MaxLimit > 0 && requested > s.config.MaxLimit {
		requested = s.config.MaxLimit
	}
	return requested
}

// sendResponse encodes one response value to the output stream.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}

func since(start time.Time) int64 {
	return time.Since(start).Microseconds()
}
