package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/supabase-community/supabase-go"
	"muse-studio-server/modules/common/config"
	"muse-studio-server/modules/common/model"
)

type Client struct {
	supabase *supabase.Client
}

// NewClient - Database 클라이언트 생성
func NewClient() *Client {
	cfg := config.GetConfig()

	supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("❌ Failed to create Supabase client: %v", err)
		return nil
	}

	return &Client{
		supabase: supabaseClient,
	}
}

// CreateJobRecord - muse_jobs 테이블에 작업 레코드 생성
func (c *Client) CreateJobRecord(ctx context.Context, jobID string, productionID string, jobType string, input model.JobInputData) error {
	log.Printf("💾 Creating job record: %s (type: %s)", jobID, jobType)

	// JobInputData → JSONB map
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal job input: %w", err)
	}
	var inputMap map[string]interface{}
	if err := json.Unmarshal(inputBytes, &inputMap); err != nil {
		return fmt.Errorf("failed to remap job input: %w", err)
	}

	insertData := map[string]interface{}{
		"job_id":         jobID,
		"production_id":  productionID,
		"job_type":       jobType,
		"job_status":     model.StatusPending,
		"job_input_data": inputMap,
	}
	if input.UserID != "" {
		insertData["member_id"] = input.UserID
	}

	_, _, err = c.supabase.From("muse_jobs").
		Insert(insertData, false, "", "", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to insert job record: %w", err)
	}

	log.Printf("✅ Job record created: %s", jobID)
	return nil
}

// FetchJob - muse_jobs에서 Job 데이터 조회
func (c *Client) FetchJob(jobID string) (*model.StudioJob, error) {
	log.Printf("🔍 Fetching job: %s", jobID)

	var jobs []model.StudioJob

	data, _, err := c.supabase.From("muse_jobs").
		Select("*", "exact", false).
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to query muse_jobs: %w", err)
	}

	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse job response: %w", err)
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("job not found: %s", jobID)
	}

	job := &jobs[0]
	log.Printf("✅ Job fetched: %s (status: %s, type: %s)", job.JobID, job.JobStatus, job.JobType)

	return job, nil
}

// UpdateJobStatus - Job 상태 업데이트
func (c *Client) UpdateJobStatus(ctx context.Context, jobID string, status string) error {
	log.Printf("📝 Updating job %s status to: %s", jobID, status)

	updateData := map[string]interface{}{
		"job_status": status,
		"updated_at": "now()",
	}

	if status == model.StatusProcessing {
		updateData["started_at"] = "now()"
	} else if status == model.StatusCompleted || status == model.StatusFailed {
		updateData["completed_at"] = "now()"
	}

	_, _, err := c.supabase.From("muse_jobs").
		Update(updateData, "", "").
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	log.Printf("✅ Job %s status updated to: %s", jobID, status)
	return nil
}

// MarkJobFailed - 실패 사유와 함께 Job을 failed로 마킹
func (c *Client) MarkJobFailed(ctx context.Context, jobID string, errMsg string) error {
	updateData := map[string]interface{}{
		"job_status":    model.StatusFailed,
		"error_message": errMsg,
		"completed_at":  "now()",
		"updated_at":    "now()",
	}

	_, _, err := c.supabase.From("muse_jobs").
		Update(updateData, "", "").
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}
	return nil
}

// SetJobAttach - 완료된 Job에 결과 attach_id 연결
func (c *Client) SetJobAttach(ctx context.Context, jobID string, attachID int) error {
	updateData := map[string]interface{}{
		"attach_id":  attachID,
		"updated_at": "now()",
	}

	_, _, err := c.supabase.From("muse_jobs").
		Update(updateData, "", "").
		Eq("job_id", jobID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to set job attach: %w", err)
	}
	return nil
}

// CreateProductionRecord - muse_productions 테이블에 프로덕션 레코드 생성
func (c *Client) CreateProductionRecord(ctx context.Context, productionID string, userID string, workflowMode string) error {
	log.Printf("💾 Creating production record: %s", productionID)

	insertData := map[string]interface{}{
		"production_id":     productionID,
		"production_status": model.StatusPending,
		"workflow_mode":     workflowMode,
	}
	if userID != "" {
		insertData["member_id"] = userID
	}

	_, _, err := c.supabase.From("muse_productions").
		Insert(insertData, false, "", "", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to insert production record: %w", err)
	}

	log.Printf("✅ Production record created: %s", productionID)
	return nil
}

// UpdateProductionStatus - Production 상태 업데이트
func (c *Client) UpdateProductionStatus(ctx context.Context, productionID string, status string) error {
	log.Printf("📝 Updating production %s status to: %s", productionID, status)

	updateData := map[string]interface{}{
		"production_status": status,
	}

	_, _, err := c.supabase.From("muse_productions").
		Update(updateData, "", "").
		Eq("production_id", productionID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to update production status: %w", err)
	}

	log.Printf("✅ Production %s status updated to: %s", productionID, status)
	return nil
}

// FetchAttachInfo - muse_attach 테이블에서 파일 정보 조회
func (c *Client) FetchAttachInfo(attachID int) (*model.Attach, error) {
	log.Printf("🔍 Fetching attach info: %d", attachID)

	var attaches []model.Attach

	data, _, err := c.supabase.From("muse_attach").
		Select("*", "exact", false).
		Eq("attach_id", fmt.Sprintf("%d", attachID)).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to query muse_attach: %w", err)
	}

	if err := json.Unmarshal(data, &attaches); err != nil {
		return nil, fmt.Errorf("failed to parse attach response: %w", err)
	}

	if len(attaches) == 0 {
		return nil, fmt.Errorf("attach not found: %d", attachID)
	}

	attach := &attaches[0]
	log.Printf("✅ Attach info fetched: ID=%d", attach.AttachID)

	return attach, nil
}

// CreateAttachRecord - muse_attach 테이블에 레코드 생성
func (c *Client) CreateAttachRecord(ctx context.Context, filePath string, fileSize int64) (int, error) {
	log.Printf("💾 Creating attach record for: %s", filePath)

	// 파일명 추출
	fileName := filePath
	for i := len(filePath) - 1; i >= 0; i-- {
		if filePath[i] == '/' {
			fileName = filePath[i+1:]
			break
		}
	}

	insertData := map[string]interface{}{
		"attach_original_name": fileName,
		"attach_file_name":     fileName,
		"attach_file_path":     filePath,
		"attach_file_size":     fileSize,
		"attach_file_type":     "image/webp",
		"attach_directory":     filePath,
		"attach_storage_type":  "supabase",
	}

	data, _, err := c.supabase.From("muse_attach").
		Insert(insertData, false, "", "", "").
		Execute()

	if err != nil {
		return 0, fmt.Errorf("failed to insert attach record: %w", err)
	}

	var attaches []model.Attach
	if err := json.Unmarshal(data, &attaches); err != nil {
		return 0, fmt.Errorf("failed to parse attach response: %w", err)
	}

	if len(attaches) == 0 {
		return 0, fmt.Errorf("no attach record returned")
	}

	attachID := int(attaches[0].AttachID)
	log.Printf("✅ Attach record created: ID=%d", attachID)

	return attachID, nil
}

// AppendProductionAttachIDs - Production의 attach_ids 배열에 추가
func (c *Client) AppendProductionAttachIDs(ctx context.Context, productionID string, newAttachIDs []int) error {
	log.Printf("📎 Updating production %s attach_ids with %d new IDs", productionID, len(newAttachIDs))

	// 1. 기존 attach_ids 조회
	var productions []struct {
		AttachIDs []interface{} `json:"attach_ids"`
	}

	data, _, err := c.supabase.From("muse_productions").
		Select("attach_ids", "", false).
		Eq("production_id", productionID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to fetch existing attach_ids: %w", err)
	}

	if err := json.Unmarshal(data, &productions); err != nil {
		return fmt.Errorf("failed to parse productions: %w", err)
	}

	// 2. 기존 배열과 병합
	var existingIDs []int
	if len(productions) > 0 && productions[0].AttachIDs != nil {
		for _, id := range productions[0].AttachIDs {
			if floatID, ok := id.(float64); ok {
				existingIDs = append(existingIDs, int(floatID))
			}
		}
	}

	mergedIDs := append(existingIDs, newAttachIDs...)

	// 3. Production 업데이트 (JSONB는 배열 그대로 전달)
	updateData := map[string]interface{}{
		"attach_ids": mergedIDs,
	}

	_, _, err = c.supabase.From("muse_productions").
		Update(updateData, "", "").
		Eq("production_id", productionID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to update production attach_ids: %w", err)
	}

	log.Printf("✅ Production attach_ids updated: %v", mergedIDs)
	return nil
}
