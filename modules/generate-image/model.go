package generateimage

import (
	"muse-studio-server/modules/common/model"
)

// ProcessRequest - 이미지 생성/수정 요청
type ProcessRequest struct {
	References      []model.ReferenceInput `json:"references"`
	WorkflowMode    string                 `json:"workflow_mode"` // creator | ads
	SystemMode      string                 `json:"system_mode"`   // photo | reels
	ArtStyle        string                 `json:"art_style"`
	LookStyles      []string               `json:"look_styles,omitempty"`
	Language        string                 `json:"language"`
	Similarity      model.SimilarityInput  `json:"similarity"`
	Locks           model.LockInput        `json:"locks"`
	Ads             *model.AdsInput        `json:"ads,omitempty"`
	AspectRatio     string                 `json:"aspect_ratio,omitempty"` // 생성 전용, 수정 경로에서는 무시
	Resolution      string                 `json:"resolution,omitempty"`   // low | medium | high
	IsEdit          bool                   `json:"is_edit"`
	UserInstruction string                 `json:"user_instruction,omitempty"`
	UserID          string                 `json:"user_id,omitempty"`
}

// ToJobInput - 요청 → job_input_data 구조
func (r *ProcessRequest) ToJobInput() model.JobInputData {
	return model.JobInputData{
		WorkflowMode:    r.WorkflowMode,
		SystemMode:      r.SystemMode,
		ArtStyle:        r.ArtStyle,
		LookStyles:      r.LookStyles,
		Language:        r.Language,
		Similarity:      r.Similarity,
		Locks:           r.Locks,
		Ads:             r.Ads,
		AspectRatio:     r.AspectRatio,
		Resolution:      r.Resolution,
		UserInstruction: r.UserInstruction,
		References:      r.References,
		IsEdit:          r.IsEdit,
		UserID:          r.UserID,
	}
}

// ProcessResponse - 동기 이미지 생성 응답
type ProcessResponse struct {
	Success      bool   `json:"success"`
	ImageDataURL string `json:"image_data_url,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// EnqueueResponse - 비동기 이미지 생성 응답 (202)
type EnqueueResponse struct {
	Success      bool   `json:"success"`
	JobID        string `json:"job_id,omitempty"`
	ProductionID string `json:"production_id,omitempty"`
	Status       string `json:"status,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// JobStatusResponse - Job 상태 조회 응답
type JobStatusResponse struct {
	Success      bool    `json:"success"`
	JobID        string  `json:"job_id,omitempty"`
	JobStatus    string  `json:"job_status,omitempty"`
	JobType      string  `json:"job_type,omitempty"`
	AttachID     *int64  `json:"attach_id,omitempty"`
	ErrorDetail  *string `json:"error_detail,omitempty"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// CancelResponse - Job 취소 응답
type CancelResponse struct {
	Success      bool   `json:"success"`
	JobID        string `json:"job_id,omitempty"`
	JobStatus    string `json:"job_status,omitempty"`
	Message      string `json:"message,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
