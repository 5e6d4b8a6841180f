package analyze

import (
	"encoding/json"
	"log"
	"net/http"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleAnalyze - POST /api/analyze
// 레퍼런스 이미지 + 스튜디오 설정 → 피사체 분석 결과
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Service 확인
	if h.service == nil {
		log.Println("❌ [Analyze] Service not initialized")
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
		})
		return
	}

	// Request 파싱
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Analyze] Invalid request: %v", err)
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	// 요청 검증
	if len(req.References) == 0 {
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Success:      false,
			ErrorMessage: "At least one reference image is required",
		})
		return
	}

	log.Printf("🔍 [Analyze] Processing request: references=%d, mode=%s/%s",
		len(req.References), req.WorkflowMode, req.SystemMode)

	ctx := r.Context()

	response, err := h.service.Analyze(ctx, &req)
	if err != nil {
		log.Printf("❌ [Analyze] Analysis failed: %v", err)
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Success:      false,
			ErrorMessage: "Analysis failed",
		})
		return
	}

	log.Printf("✅ [Analyze] Response sent: success=%v", response.Success)

	json.NewEncoder(w).Encode(response)
}
