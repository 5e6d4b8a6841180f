package model

import "time"

// StudioJob - muse_jobs 테이블 구조 (비동기 이미지 생성 작업)
type StudioJob struct {
	JobID        string                 `json:"job_id"`
	ProductionID *string                `json:"production_id"`
	JobType      string                 `json:"job_type"` // "generate" | "edit"
	JobStatus    string                 `json:"job_status"`
	JobInputData map[string]interface{} `json:"job_input_data"`
	AttachID     *int64                 `json:"attach_id"` // 결과 이미지
	ErrorMessage *string                `json:"error_message"`
	MemberID     *string                `json:"member_id"`
	CreatedAt    time.Time              `json:"created_at"`
	StartedAt    *time.Time             `json:"started_at"`
	CompletedAt  *time.Time             `json:"completed_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// SimilarityInput - 레퍼런스 일치 강도 (0~100)
type SimilarityInput struct {
	Character  int `json:"character"`
	Product    int `json:"product"`
	Background int `json:"background"`
}

// LockInput - 100% 고정 플래그 (background는 잠금 없음)
type LockInput struct {
	Character bool `json:"character"`
	Product   bool `json:"product"`
}

// AdsInput - 광고 모드 최적화 번들
type AdsInput struct {
	Objective       string   `json:"objective"`
	SellingAngle    string   `json:"selling_angle"`
	TrustBuilder    string   `json:"trust_builder"`
	Emphasis        string   `json:"emphasis"`
	Lighting        string   `json:"lighting"`
	Composition     string   `json:"composition"`
	MarketingStyles []string `json:"marketing_styles"`
}

// ReferenceInput - 요청에 실려오는 레퍼런스 이미지 (data URL 또는 attach ID)
type ReferenceInput struct {
	DataURL  string `json:"data_url,omitempty"`
	AttachID int    `json:"attach_id,omitempty"`
	Role     string `json:"role,omitempty"` // character | product | background
}

// JobInputData - job_input_data JSONB 구조
type JobInputData struct {
	WorkflowMode    string           `json:"workflow_mode"` // creator | ads
	SystemMode      string           `json:"system_mode"`   // photo | reels
	ArtStyle        string           `json:"art_style"`
	LookStyles      []string         `json:"look_styles"`
	Language        string           `json:"language"`
	Similarity      SimilarityInput  `json:"similarity"`
	Locks           LockInput        `json:"locks"`
	Ads             *AdsInput        `json:"ads,omitempty"`
	AspectRatio     string           `json:"aspect_ratio,omitempty"`
	Resolution      string           `json:"resolution,omitempty"` // low | medium | high
	UserInstruction string           `json:"user_instruction"`
	References      []ReferenceInput `json:"references"`
	IsEdit          bool             `json:"is_edit"`
	UserID          string           `json:"user_id"`
}

// Attach - muse_attach 테이블 구조
type Attach struct {
	AttachID           int64     `json:"attach_id"`
	CreatedAt          time.Time `json:"created_at"`
	AttachOriginalName *string   `json:"attach_original_name"`
	AttachFileName     *string   `json:"attach_file_name"`
	AttachFilePath     *string   `json:"attach_file_path"`
	AttachFileSize     *int64    `json:"attach_file_size"`
	AttachFileType     *string   `json:"attach_file_type"`
	AttachDirectory    *string   `json:"attach_directory"`
	AttachStorageType  *string   `json:"attach_storage_type"`
}

const (
	StatusPending       = "pending"
	StatusProcessing    = "processing"
	StatusCompleted     = "completed"
	StatusFailed        = "failed"
	StatusUserCancelled = "user_cancelled"
)
