package scenescript

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

// HandleScript - POST /api/scene-script
// 스튜디오 설정 + 제품/피사체 브리프 → 숏폼 프로덕션 스크립트
func (h *Handler) HandleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.service == nil {
		log.Println("❌ [SceneScript] Service not initialized")
		json.NewEncoder(w).Encode(ScriptResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
		})
		return
	}

	var req ScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [SceneScript] Invalid request: %v", err)
		json.NewEncoder(w).Encode(ScriptResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	// 브리프와 레퍼런스는 둘 다 선택 사항 (없으면 설정만으로 스크립트 작성)
	if strings.TrimSpace(req.ProductBrief) == "" && len(req.References) == 0 {
		log.Printf("⚠️  [SceneScript] No brief or references, writing from settings only")
	}

	log.Printf("🎬 [SceneScript] Processing request: scenes=%d, references=%d",
		req.SceneCount, len(req.References))

	ctx := r.Context()

	response, err := h.service.GenerateScript(ctx, &req)
	if err != nil {
		log.Printf("❌ [SceneScript] Script generation failed: %v", err)
		json.NewEncoder(w).Encode(ScriptResponse{
			Success:      false,
			ErrorMessage: "Script generation failed",
		})
		return
	}

	log.Printf("✅ [SceneScript] Response sent: success=%v", response.Success)

	json.NewEncoder(w).Encode(response)
}
