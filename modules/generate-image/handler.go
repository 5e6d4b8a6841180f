package generateimage

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"muse-studio-server/modules/common/lexicon"
	"muse-studio-server/modules/common/model"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/process-image", h.HandleProcess).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/process-image/sync", h.HandleProcessSync).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/jobs/{jobId}", h.HandleJobStatus).Methods("GET")
	r.HandleFunc("/api/jobs/{jobId}/cancel", h.HandleCancel).Methods("POST", "OPTIONS")
	log.Println("✅ GenerateImage routes registered")
}

// validate - 공통 요청 검증 (생성은 레퍼런스 없이도 가능, 수정은 원본 필수)
func validate(req *ProcessRequest) string {
	if req.IsEdit && len(req.References) == 0 {
		return "Edit requires the source image as a reference"
	}
	if req.AspectRatio != "" && !lexicon.IsValidAspectRatio(req.AspectRatio) {
		return "Unsupported aspect_ratio: " + req.AspectRatio
	}
	return ""
}

// HandleProcess - POST /api/process-image
// 비동기 생성: job을 등록하고 202 + job_id 반환, 진행은 /ws?job=<id> 구독
func (h *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.service == nil {
		log.Println("❌ [GenerateImage] Service not initialized")
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
		})
		return
	}

	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [GenerateImage] Invalid request: %v", err)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	if msg := validate(&req); msg != "" {
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success:      false,
			ErrorMessage: msg,
		})
		return
	}

	log.Printf("🎨 [GenerateImage] Enqueue request: edit=%v, references=%d, ratio=%s",
		req.IsEdit, len(req.References), req.AspectRatio)

	jobID, productionID, err := h.service.Enqueue(r.Context(), &req)
	if err != nil {
		log.Printf("❌ [GenerateImage] Enqueue failed: %v", err)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success:      false,
			ErrorMessage: "Failed to enqueue job",
		})
		return
	}

	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(EnqueueResponse{
		Success:      true,
		JobID:        jobID,
		ProductionID: productionID,
		Status:       model.StatusPending,
	})
}

// HandleProcessSync - POST /api/process-image/sync
// 동기 생성: 호출이 끝날 때까지 대기, 결과는 data URL
func (h *Handler) HandleProcessSync(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.service == nil {
		log.Println("❌ [GenerateImage] Service not initialized")
		json.NewEncoder(w).Encode(ProcessResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
		})
		return
	}

	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [GenerateImage] Invalid request: %v", err)
		json.NewEncoder(w).Encode(ProcessResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	if msg := validate(&req); msg != "" {
		json.NewEncoder(w).Encode(ProcessResponse{
			Success:      false,
			ErrorMessage: msg,
		})
		return
	}

	log.Printf("🎨 [GenerateImage] Sync request: edit=%v, references=%d",
		req.IsEdit, len(req.References))

	dataURL, err := h.service.Generate(r.Context(), req.ToJobInput())
	if err != nil {
		log.Printf("❌ [GenerateImage] Generation failed: %v", err)
		json.NewEncoder(w).Encode(ProcessResponse{
			Success:      false,
			ErrorMessage: "Generation failed",
		})
		return
	}

	if dataURL == "" {
		json.NewEncoder(w).Encode(ProcessResponse{
			Success:      false,
			ErrorMessage: "No image generated",
		})
		return
	}

	json.NewEncoder(w).Encode(ProcessResponse{
		Success:      true,
		ImageDataURL: dataURL,
	})
}

// HandleJobStatus - GET /api/jobs/{jobId}
func (h *Handler) HandleJobStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	jobID := vars["jobId"]

	if jobID == "" {
		json.NewEncoder(w).Encode(JobStatusResponse{
			Success:      false,
			ErrorMessage: "jobId is required",
		})
		return
	}

	job, err := h.service.GetJobStatus(jobID)
	if err != nil {
		log.Printf("❌ [GenerateImage] Job not found: %s", jobID)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(JobStatusResponse{
			Success:      false,
			ErrorMessage: "Job not found",
		})
		return
	}

	json.NewEncoder(w).Encode(JobStatusResponse{
		Success:     true,
		JobID:       job.JobID,
		JobStatus:   job.JobStatus,
		JobType:     job.JobType,
		AttachID:    job.AttachID,
		ErrorDetail: job.ErrorMessage,
	})
}

// HandleCancel - POST /api/jobs/{jobId}/cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	jobID := vars["jobId"]

	if jobID == "" {
		json.NewEncoder(w).Encode(CancelResponse{
			Success:      false,
			ErrorMessage: "jobId is required",
		})
		return
	}

	log.Printf("🛑 [GenerateImage] Cancel requested for job: %s", jobID)

	job, err := h.service.Cancel(r.Context(), jobID)
	if err != nil {
		status := ""
		if job != nil {
			status = job.JobStatus
		}
		json.NewEncoder(w).Encode(CancelResponse{
			Success:      false,
			JobID:        jobID,
			JobStatus:    status,
			ErrorMessage: err.Error(),
		})
		return
	}

	json.NewEncoder(w).Encode(CancelResponse{
		Success:   true,
		JobID:     jobID,
		JobStatus: job.JobStatus,
		Message:   "Cancel request sent. Job will stop before the next stage.",
	})
}
