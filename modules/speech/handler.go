package speech

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleSpeech - POST /api/speech
// 보이스오버 스크립트 → 음성 (base64 오디오)
func (h *Handler) HandleSpeech(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.service == nil {
		log.Println("❌ [Speech] Service not initialized")
		json.NewEncoder(w).Encode(SpeechResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
		})
		return
	}

	var req SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Speech] Invalid request: %v", err)
		json.NewEncoder(w).Encode(SpeechResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		json.NewEncoder(w).Encode(SpeechResponse{
			Success:      false,
			ErrorMessage: "Text is required",
		})
		return
	}

	log.Printf("🔊 [Speech] Processing request: %d chars", len(req.Text))

	ctx := r.Context()

	response, err := h.service.Synthesize(ctx, &req)
	if err != nil {
		log.Printf("❌ [Speech] Synthesis failed: %v", err)
		json.NewEncoder(w).Encode(SpeechResponse{
			Success:      false,
			ErrorMessage: "Synthesis failed",
		})
		return
	}

	log.Printf("✅ [Speech] Response sent: success=%v", response.Success)

	json.NewEncoder(w).Encode(response)
}
