package chatproxy

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/sirupsen/logrus"
)

// Message is one turn of the conversation as sent by the client. Content
// is either a plain string or a {"segments": [...]} object from an earlier
// assistant reply.
type Message struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Messages            []Message `json:"messages"`
	Scenario            string    `json:"scenario,omitempty"`
	ScenarioContext     string    `json:"scenarioContext,omitempty"`
	FriendPersonality   string    `json:"friendPersonality,omitempty"`
	FriendTraits        []string  `json:"friendTraits,omitempty"`
	FriendSpeakingStyle string    `json:"friendSpeakingStyle,omitempty"`
	FriendName          string    `json:"friendName,omitempty"`
	FriendBio           string    `json:"friendBio,omitempty"`
	KnowsUserName       bool      `json:"knowsUserName,omitempty"`
	UserName            string    `json:"userName,omitempty"`
}

// ChatResponse is the success body of POST /chat.
type ChatResponse struct {
	Message struct {
		Segments []Segment `json:"segments"`
	} `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Config configures a Server.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Log     *logrus.Logger
}

// Server proxies chat requests to an OpenAI-compatible gateway and maps
// the model output onto the segment contract.
type Server struct {
	client oai.Client
	model  string
	log    *logrus.Logger
}

// NewServer constructs a Server from cfg.
func NewServer(cfg Config) (*Server, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("chatproxy: api key must not be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("chatproxy: model must not be empty")
	}
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Rate-limit errors must reach the client promptly, so the SDK
		// must not retry them on our behalf.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Server{
		client: oai.NewClient(reqOpts...),
		model:  cfg.Model,
		log:    log,
	}, nil
}

// Handler returns the HTTP handler serving POST /chat.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.handleChat)
	return mux
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		s.writeError(w, http.StatusBadRequest, "messages must not be empty")
		return
	}

	start := time.Now()
	messages := []oai.ChatCompletionMessageParamUnion{
		oai.SystemMessage(BuildSystemPrompt(req)),
	}
	for _, m := range req.Messages {
		text := normalizeContent(m.Content)
		switch m.Role {
		case "assistant":
			messages = append(messages, oai.AssistantMessage(text))
		default:
			messages = append(messages, oai.UserMessage(text))
		}
	}

	resp, err := s.client.Chat.Completions.New(r.Context(), oai.ChatCompletionNewParams{
		Model:    shared.ChatModel(s.model),
		Messages: messages,
	})
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	if len(resp.Choices) == 0 {
		s.log.Warn("upstream returned no choices")
		s.writeError(w, http.StatusInternalServerError, "Failed to get AI response")
		return
	}

	raw := resp.Choices[0].Message.Content
	parsed := ParseSegments(raw)
	if !parsed.OK {
		s.log.WithField("raw_len", len(raw)).Warn("model output was not valid segment JSON, using fallback")
	}

	var out ChatResponse
	out.Message.Segments = parsed.Segments

	s.log.WithFields(logrus.Fields{
		"friend":   req.FriendName,
		"turns":    len(req.Messages),
		"segments": len(out.Message.Segments),
		"elapsed":  time.Since(start).Round(time.Millisecond).String(),
	}).Info("chat completed")

	s.writeJSON(w, http.StatusOK, out)
}

// writeUpstreamError maps gateway errors onto the client-facing contract.
// Rate-limit and payment failures pass through with actionable messages;
// everything else collapses to a generic 500.
func (s *Server) writeUpstreamError(w http.ResponseWriter, err error) {
	var apierr *oai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusTooManyRequests:
			s.log.WithError(err).Warn("upstream rate limited")
			s.writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment.")
			return
		case http.StatusPaymentRequired:
			s.log.WithError(err).Warn("upstream credits exhausted")
			s.writeError(w, http.StatusPaymentRequired, "AI usage limit reached. Please add credits to continue.")
			return
		}
	}
	s.log.WithError(err).Error("upstream request failed")
	s.writeError(w, http.StatusInternalServerError, "Failed to get AI response")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// normalizeContent flattens a message content value to plain text. History
// entries from earlier assistant turns arrive as segment objects; the model
// sees each segment's Chinese text, or its English text when Chinese is
// empty.
func normalizeContent(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Segments []Segment `json:"segments"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && len(obj.Segments) > 0 {
		parts := make([]string, 0, len(obj.Segments))
		for _, seg := range obj.Segments {
			text := seg.Chinese
			if text == "" {
				// Fallback segments carry their text in English only.
				text = seg.English
			}
			parts = append(parts, text)
		}
		return strings.Join(parts, "")
	}
	return string(raw)
}
