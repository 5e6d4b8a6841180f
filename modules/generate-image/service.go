package generateimage

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/genai"

	"muse-studio-server/modules/common/config"
	"muse-studio-server/modules/common/credit"
	"muse-studio-server/modules/common/database"
	"muse-studio-server/modules/common/gemini"
	"muse-studio-server/modules/common/lexicon"
	"muse-studio-server/modules/common/model"
	"muse-studio-server/modules/common/prompt"
	redisutil "muse-studio-server/modules/common/redis"
	"muse-studio-server/modules/common/storage"
)

type Service struct {
	dbClient      *database.Client
	storageClient *storage.Client
	creditClient  *credit.Client
	rdb           *goredis.Client
}

func NewService(dbClient *database.Client, storageClient *storage.Client, rdb *goredis.Client) *Service {
	return &Service{
		dbClient:      dbClient,
		storageClient: storageClient,
		creditClient:  credit.NewClient(),
		rdb:           rdb,
	}
}

// selectModelConfig - 작업 종류에 따라 모델과 생성 설정 선택
// 수정은 전용 모델에 ImageConfig 없이 (원본 geometry를 모델이 유지하도록),
// 생성은 비율이 있을 때만 ImageConfig를 싣고 해상도는 프리셋 밖이면 medium
func selectModelConfig(cfg *config.Config, input model.JobInputData) (string, *genai.GenerateContentConfig) {
	if input.IsEdit {
		return cfg.GeminiEditModel, &genai.GenerateContentConfig{}
	}

	genConfig := &genai.GenerateContentConfig{}
	if input.AspectRatio != "" {
		resolution := lexicon.ResolutionLevel(input.Resolution)
		if _, ok := lexicon.ResolutionPresets[resolution]; !ok {
			resolution = lexicon.ResolutionMedium
		}
		genConfig.ImageConfig = &genai.ImageConfig{
			AspectRatio: input.AspectRatio,
			ImageSize:   lexicon.ResolutionPresets[resolution],
		}
	}
	return cfg.GeminiImageModel, genConfig
}

// Generate - 이미지 생성/수정 호출
// 수정 경로는 전용 모델을 쓰고 사이즈/비율 설정을 절대 싣지 않음
// (원본 geometry를 모델이 유지하도록). 반환값 ""는 부재, 에러 아님.
func (s *Service) Generate(ctx context.Context, input model.JobInputData) (string, error) {
	cfg := config.GetConfig()

	// 1. 레퍼런스 해석
	refs, err := s.storageClient.ResolveReferences(input.References)
	if err != nil {
		return "", fmt.Errorf("failed to resolve references: %w", err)
	}

	// 2. 프롬프트 조합
	trailer := generationTrailer
	if input.IsEdit {
		trailer = editTrailer
	}
	composed := prompt.Compose(prompt.FromSettings(
		input.WorkflowMode, input.SystemMode, input.ArtStyle,
		input.LookStyles, input.Language,
		input.Similarity, input.Locks, input.Ads,
		trailer, input.UserInstruction,
	))

	parts := []*genai.Part{genai.NewPartFromText(composed)}
	parts = append(parts, gemini.BuildParts(refs)...)

	// 3. 모델/설정 선택
	modelName, genConfig := selectModelConfig(cfg, input)

	// 4. 호출마다 새 클라이언트
	client, err := gemini.NewClient(ctx)
	if err != nil {
		return "", err
	}

	log.Printf("🎨 [GenerateImage] Calling %s (edit: %v, references: %d, ratio: %s)",
		modelName, input.IsEdit, len(refs), input.AspectRatio)

	result, err := client.Models.GenerateContent(
		ctx,
		modelName,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		genConfig,
	)
	if err != nil {
		return "", fmt.Errorf("gemini image call failed: %w", err)
	}

	// 5. 이미지 추출 (없으면 "")
	dataURL := gemini.ExtractImageDataURL(result)
	if dataURL == "" {
		log.Printf("⚠️  [GenerateImage] No image returned from model")
	} else {
		log.Printf("✅ [GenerateImage] Image generated: %d chars data URL", len(dataURL))
	}

	return dataURL, nil
}

// Enqueue - 비동기 작업 등록
// production/job 레코드 생성 후 Redis 큐에 LPUSH
func (s *Service) Enqueue(ctx context.Context, req *ProcessRequest) (string, string, error) {
	jobID := uuid.New().String()
	productionID := uuid.New().String()

	jobType := "generate"
	if req.IsEdit {
		jobType = "edit"
	}

	// 0. 크레딧 확인 (익명 요청은 건너뜀)
	if req.UserID != "" && s.creditClient != nil {
		hasEnough, err := s.creditClient.CheckBalance(ctx, req.UserID, 1)
		if err != nil {
			return "", "", fmt.Errorf("failed to check credits: %w", err)
		}
		if !hasEnough {
			return "", "", fmt.Errorf("insufficient credits")
		}
	}

	// 1. Production 레코드 생성
	if err := s.dbClient.CreateProductionRecord(ctx, productionID, req.UserID, req.WorkflowMode); err != nil {
		return "", "", err
	}

	// 2. Job 레코드 생성
	if err := s.dbClient.CreateJobRecord(ctx, jobID, productionID, jobType, req.ToJobInput()); err != nil {
		return "", "", err
	}

	// 3. 큐에 등록
	if err := s.rdb.LPush(ctx, "jobs:queue", jobID).Err(); err != nil {
		return "", "", fmt.Errorf("failed to enqueue job: %w", err)
	}

	queueLen, _ := s.rdb.LLen(ctx, "jobs:queue").Result()
	log.Printf("📥 [GenerateImage] Job %s enqueued (type: %s, position: %d)", jobID, jobType, queueLen)

	return jobID, productionID, nil
}

// GetJobStatus - Job 상태 조회
func (s *Service) GetJobStatus(jobID string) (*model.StudioJob, error) {
	return s.dbClient.FetchJob(jobID)
}

// IsJobCancelled - 취소 플래그 확인
func (s *Service) IsJobCancelled(jobID string) bool {
	return redisutil.IsJobCancelled(s.rdb, jobID)
}

// Cancel - 취소 플래그 설정 + 현재 상태 반환
// 이미 완료/취소된 작업은 취소 불가
func (s *Service) Cancel(ctx context.Context, jobID string) (*model.StudioJob, error) {
	job, err := s.dbClient.FetchJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.JobStatus == model.StatusCompleted || job.JobStatus == model.StatusUserCancelled {
		return job, fmt.Errorf("job already %s", job.JobStatus)
	}

	if err := redisutil.SetJobCancelled(s.rdb, jobID); err != nil {
		return nil, fmt.Errorf("failed to set cancel flag: %w", err)
	}

	return job, nil
}
