package redis

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const cancelKeyPrefix = "jobs:cancel:"

// 취소 플래그는 작업 최대 수명보다 넉넉하게 유지
const cancelFlagTTL = 24 * time.Hour

// SetJobCancelled - Job 취소 플래그 설정
func SetJobCancelled(rdb *redis.Client, jobID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Set(ctx, cancelKeyPrefix+jobID, "1", cancelFlagTTL).Err(); err != nil {
		return err
	}

	log.Printf("🛑 Cancel flag set for job: %s", jobID)
	return nil
}

// IsJobCancelled - Job 취소 여부 확인
// Redis 조회 실패는 취소 아님으로 처리 (작업을 멈추는 쪽이 더 위험)
func IsJobCancelled(rdb *redis.Client, jobID string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := rdb.Exists(ctx, cancelKeyPrefix+jobID).Result()
	if err != nil {
		log.Printf("⚠️  Failed to check cancel flag for %s: %v", jobID, err)
		return false
	}
	return exists > 0
}
