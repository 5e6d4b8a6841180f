package generateimage

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"muse-studio-server/modules/common/config"
	"muse-studio-server/modules/common/database"
	"muse-studio-server/modules/common/hub"
	"muse-studio-server/modules/common/model"
	redisutil "muse-studio-server/modules/common/redis"
	"muse-studio-server/modules/common/storage"
	"muse-studio-server/modules/common/utils"
)

// StartWorker - Redis Queue Worker 시작
// jobs:queue를 BRPOP으로 감시하고 job마다 goroutine으로 처리
func StartWorker(progressHub *hub.Hub) {
	log.Println("🔄 Redis Queue Worker starting...")

	cfg := config.GetConfig()

	rdb := redisutil.Connect(cfg)
	if rdb == nil {
		log.Fatal("❌ Failed to connect to Redis")
		return
	}
	log.Println("✅ Redis connected successfully")

	dbClient := database.NewClient()
	if dbClient == nil {
		log.Fatal("❌ Failed to initialize Database client")
		return
	}

	storageClient := storage.NewClient(dbClient)
	service := NewService(dbClient, storageClient, rdb)

	log.Println("👀 Watching queue: jobs:queue")

	ctx := context.Background()

	for {
		result, err := rdb.BRPop(ctx, 0, "jobs:queue").Result()
		if err != nil {
			log.Printf("❌ Redis BRPOP error: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		// result[0]은 "jobs:queue", result[1]이 실제 job_id
		jobID := result[1]
		log.Printf("🎯 Received new job: %s", jobID)

		go processJob(ctx, service, progressHub, jobID)
	}
}

// processJob - Job 하나 처리 (생성 → WebP 변환 → 업로드 → 레코드 연결)
func processJob(ctx context.Context, service *Service, progressHub *hub.Hub, jobID string) {
	log.Printf("🚀 Processing job: %s", jobID)

	job, err := service.dbClient.FetchJob(jobID)
	if err != nil {
		log.Printf("❌ Failed to fetch job %s: %v", jobID, err)
		return
	}

	// job_input_data → 타입 구조로 복원
	var input model.JobInputData
	inputBytes, err := json.Marshal(job.JobInputData)
	if err == nil {
		err = json.Unmarshal(inputBytes, &input)
	}
	if err != nil {
		log.Printf("❌ Failed to decode job input for %s: %v", jobID, err)
		failJob(ctx, service, progressHub, job, "invalid job input data")
		return
	}

	// 생성 전 취소 체크
	if service.IsJobCancelled(jobID) {
		cancelJob(ctx, service, progressHub, job)
		return
	}

	if err := service.dbClient.UpdateJobStatus(ctx, jobID, model.StatusProcessing); err != nil {
		log.Printf("⚠️  Failed to mark job %s processing: %v", jobID, err)
	}
	if job.ProductionID != nil {
		if err := service.dbClient.UpdateProductionStatus(ctx, *job.ProductionID, model.StatusProcessing); err != nil {
			log.Printf("⚠️  Failed to mark production %s processing: %v", *job.ProductionID, err)
		}
	}
	progressHub.Broadcast(jobID, hub.ProgressEvent{
		Status:  model.StatusProcessing,
		Message: "Generation started",
	})

	// 이미지 생성
	dataURL, err := service.Generate(ctx, input)
	if err != nil {
		log.Printf("❌ Generation failed for job %s: %v", jobID, err)
		failJob(ctx, service, progressHub, job, err.Error())
		return
	}
	if dataURL == "" {
		failJob(ctx, service, progressHub, job, "no image generated")
		return
	}

	// 생성 후, 저장 전 취소 체크 (취소됐으면 결과 폐기)
	if service.IsJobCancelled(jobID) {
		log.Printf("🛑 Job %s cancelled after generation, discarding image", jobID)
		cancelJob(ctx, service, progressHub, job)
		return
	}

	// data URL → 바이너리
	imageData, _, err := utils.DecodeDataURL(dataURL)
	if err != nil {
		failJob(ctx, service, progressHub, job, "failed to decode generated image")
		return
	}

	// WebP 변환 + Storage 업로드
	filePath, fileSize, err := service.storageClient.UploadImage(ctx, imageData, input.UserID, utils.ConvertPNGToWebP)
	if err != nil {
		log.Printf("❌ Upload failed for job %s: %v", jobID, err)
		failJob(ctx, service, progressHub, job, "failed to upload image")
		return
	}

	// Attach 레코드 생성 + Job/Production 연결
	attachID, err := service.dbClient.CreateAttachRecord(ctx, filePath, fileSize)
	if err != nil {
		log.Printf("❌ Attach record failed for job %s: %v", jobID, err)
		failJob(ctx, service, progressHub, job, "failed to create attach record")
		return
	}

	if err := service.dbClient.SetJobAttach(ctx, jobID, attachID); err != nil {
		log.Printf("⚠️  Failed to link attach %d to job %s: %v", attachID, jobID, err)
	}
	if job.ProductionID != nil {
		if err := service.dbClient.AppendProductionAttachIDs(ctx, *job.ProductionID, []int{attachID}); err != nil {
			log.Printf("⚠️  Failed to append attach to production %s: %v", *job.ProductionID, err)
		}
		if err := service.dbClient.UpdateProductionStatus(ctx, *job.ProductionID, model.StatusCompleted); err != nil {
			log.Printf("⚠️  Failed to mark production %s completed: %v", *job.ProductionID, err)
		}
	}
	if err := service.dbClient.UpdateJobStatus(ctx, jobID, model.StatusCompleted); err != nil {
		log.Printf("⚠️  Failed to mark job %s completed: %v", jobID, err)
	}

	// 크레딧 차감 (익명 작업은 건너뜀)
	if input.UserID != "" && service.creditClient != nil {
		productionID := ""
		if job.ProductionID != nil {
			productionID = *job.ProductionID
		}
		if err := service.creditClient.Deduct(ctx, input.UserID, productionID, []int{attachID}); err != nil {
			log.Printf("⚠️  Credit deduction failed for job %s: %v", jobID, err)
		}
	}

	progressHub.Broadcast(jobID, hub.ProgressEvent{
		Status:   model.StatusCompleted,
		Message:  "Generation completed",
		AttachID: attachID,
		FilePath: filePath,
	})

	log.Printf("✅ Job %s processing completed (attach: %d)", jobID, attachID)
}

// failJob - 실패 처리 + 브로드캐스트
func failJob(ctx context.Context, service *Service, progressHub *hub.Hub, job *model.StudioJob, reason string) {
	service.dbClient.MarkJobFailed(ctx, job.JobID, reason)
	if job.ProductionID != nil {
		service.dbClient.UpdateProductionStatus(ctx, *job.ProductionID, model.StatusFailed)
	}
	progressHub.Broadcast(job.JobID, hub.ProgressEvent{
		Status:       model.StatusFailed,
		ErrorMessage: reason,
	})
}

// cancelJob - 취소 상태 반영 + 브로드캐스트
func cancelJob(ctx context.Context, service *Service, progressHub *hub.Hub, job *model.StudioJob) {
	log.Printf("🛑 Job %s cancelled, stopping", job.JobID)
	service.dbClient.UpdateJobStatus(ctx, job.JobID, model.StatusUserCancelled)
	if job.ProductionID != nil {
		service.dbClient.UpdateProductionStatus(ctx, *job.ProductionID, model.StatusUserCancelled)
	}
	progressHub.Broadcast(job.JobID, hub.ProgressEvent{
		Status:  model.StatusUserCancelled,
		Message: "Job cancelled by user",
	})
}
