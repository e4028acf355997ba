package httpinteractions

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/jose-valero/wisteria-bot/internal/adapters/discord"
	"github.com/jose-valero/wisteria-bot/internal/infra/logging"
)

const (
	Path = "/discord/interactions"

	HeaderSignature = "X-Signature-Ed25519"
	HeaderTimestamp = "X-Signature-Timestamp"
	HeaderRequestID = "X-Request-ID"

	maxBody = 1 << 20
)

// Dispatcher es lo que necesitamos del discord.Router.
type Dispatcher interface {
	HandleInteraction(ctx context.Context, ic *discordgo.InteractionCreate, respond discord.Responder)
}

type Server struct {
	key    ed25519.PublicKey
	router Dispatcher
	log    *slog.Logger
	mux    *http.ServeMux

	mu  sync.Mutex
	srv *http.Server
}

// New arma el endpoint de interacciones. publicKeyHex es la public key de la
// aplicación (Developer Portal), en hex.
func New(publicKeyHex string, router Dispatcher, log *slog.Logger) (*Server, error) {
	key, err := ParsePublicKey(publicKeyHex)
	if err != nil {
		return nil, err
	}
	s := &Server{key: key, router: router, log: log.With("logger", "interactions"), mux: http.NewServeMux()}
	s.routes()
	return s, nil
}

func ParsePublicKey(h string) (ed25519.PublicKey, error) {
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key: want %d bytes, got %d", ed25519.PublicKeySize, len(b))
	}
	return ed25519.PublicKey(b), nil
}

func (s *Server) routes() {
	s.mux.HandleFunc(Path, s.handleInteraction)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	_ = r.Body.Close()
	if err != nil {
		http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
		return
	}

	reqID := uuid.NewString()
	status, out := s.Handle(r.Context(), reqID, r.Header.Get(HeaderSignature), r.Header.Get(HeaderTimestamp), body)

	w.Header().Set(HeaderRequestID, reqID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

// Handle es el núcleo compartido entre el server HTTP y la Lambda: valida la
// firma, contesta PING y pasa el resto por el router.
func (s *Server) Handle(ctx context.Context, reqID, signature, timestamp string, body []byte) (int, []byte) {
	log := s.log.With("request_id", reqID)

	if !Verify(s.key, signature, timestamp, body) {
		log.Warn("invalid signature")
		return http.StatusUnauthorized, errorBody("invalid signature")
	}

	var ic discordgo.InteractionCreate
	if err := json.Unmarshal(body, &ic); err != nil || ic.Interaction == nil {
		log.Warn("bad interaction payload", logging.Err(err))
		return http.StatusBadRequest, errorBody("invalid interaction")
	}

	if ic.Type == discordgo.InteractionPing {
		log.Debug("ping")
		return jsonBody(log, &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong})
	}

	// una interacción admite una sola respuesta; la primera es la que vale
	var resp *discordgo.InteractionResponse
	s.router.HandleInteraction(ctx, &ic, func(r *discordgo.InteractionResponse) error {
		if resp != nil {
			return errAlreadyResponded
		}
		resp = r
		return nil
	})
	if resp == nil {
		log.Info("unhandled interaction", "type", ic.Type.String())
		return http.StatusNotFound, errorBody("unhandled interaction")
	}
	return jsonBody(log, resp)
}

var errAlreadyResponded = errors.New("interaction already responded")

// Verify comprueba la firma ed25519 de Discord sobre timestamp+body.
func Verify(key ed25519.PublicKey, signature, timestamp string, body []byte) bool {
	if signature == "" || timestamp == "" {
		return false
	}
	sig, err := hex.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize || sig[63]&224 != 0 {
		return false
	}
	var msg bytes.Buffer
	msg.WriteString(timestamp)
	msg.Write(body)
	return ed25519.Verify(key, msg.Bytes(), sig)
}

func jsonBody(log *slog.Logger, v any) (int, []byte) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error("encode response", logging.Err(err))
		return http.StatusInternalServerError, errorBody("encode response")
	}
	return http.StatusOK, b
}

func errorBody(msg string) []byte {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return b
}

// Start bloquea hasta que el server se cierre. Devuelve nil tras Shutdown.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()

	s.log.Info("http listening", "addr", addr, "path", Path)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
