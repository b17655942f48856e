package server

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/rephrase/pkg/engine"
)

const maxTextLength = 10000

// Server handles the IPC for sentence checking
type Server struct {
	engine         *engine.Engine
	decoder        *msgpack.Decoder
	encoder        *msgpack.Encoder
	maxSuggestions int
}

// NewServer creates a check server using stdin/stdout for IPC.
// maxSuggestions caps how many ranked suggestions each span carries in the
// response; values below 1 disable the cap.
func NewServer(eng *engine.Engine, maxSuggestions int) *Server {
	return &Server{
		engine:         eng,
		decoder:        msgpack.NewDecoder(os.Stdin),
		encoder:        msgpack.NewEncoder(os.Stdout),
		maxSuggestions: maxSuggestions,
	}
}

// NewServerWithIO creates a server on explicit streams, used by tests.
func NewServerWithIO(eng *engine.Engine, r io.Reader, w io.Writer, maxSuggestions int) *Server {
	return &Server{
		engine:         eng,
		decoder:        msgpack.NewDecoder(r),
		encoder:        msgpack.NewEncoder(w),
		maxSuggestions: maxSuggestions,
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting server.")

	// Signal that the server is ready
	s.send(map[string]string{"status": "ready"})

	for {
		var request CheckRequest
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleCheck(request)
	}
}

// handleCheck processes a check request. It validates the text, runs the
// engine and sends back the matched spans with their ranked suggestions.
func (s *Server) handleCheck(request CheckRequest) {
	id := request.ID
	if id == "" {
		id = uuid.NewString()
		log.Debugf("Request without ID, assigned %s", id)
	}

	if request.Text == "" {
		s.sendError(id, "Missing 'text' parameter", 400)
		log.Debug("Text is empty in request")
		return
	}
	if len(request.Text) > maxTextLength {
		s.sendError(id, "Text exceeds maximum length", 400)
		log.Debugf("Text too long in request: %d bytes", len(request.Text))
		return
	}

	start := time.Now()
	spans, err := s.engine.Process(request.Text)
	elapsed := time.Since(start)
	if err != nil {
		s.sendError(id, err.Error(), 500)
		log.Errorf("Processing request %s: %v", id, err)
		return
	}

	matches := make([]MatchResult, 0, len(spans))
	for _, sp := range spans {
		suggestions := sp.Suggestions
		if s.maxSuggestions > 0 && len(suggestions) > s.maxSuggestions {
			suggestions = suggestions[:s.maxSuggestions]
		}
		first := sp.Doc.At(sp.Start)
		last := sp.Doc.At(sp.End - 1)
		matches = append(matches, MatchResult{
			Begin:       first.Offset,
			End:         last.Offset + len(last.Text),
			Text:        sp.Text(),
			RuleName:    sp.RuleName,
			Category:    sp.Category,
			Description: sp.Description,
			Suggestions: suggestions,
		})
	}

	s.send(CheckResponse{
		ID:        id,
		Matches:   matches,
		Count:     len(matches),
		TimeTaken: elapsed.Milliseconds(),
	})
}

// send encodes the response as msgpack and writes it to the client.
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(CheckError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
