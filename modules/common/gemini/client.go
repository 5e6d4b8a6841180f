package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"muse-studio-server/modules/common/config"
)

// NewClient - 호출 시마다 새 Genai 클라이언트 생성
// 풀링/공유 핸들 없음: 각 invocation이 자기 클라이언트를 만들고 버림.
// 호출 간 공유 상태가 없어야 동시 호출이 서로 간섭하지 않음 (의도된 설계)
func NewClient(ctx context.Context) (*genai.Client, error) {
	cfg := config.GetConfig()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Genai client: %w", err)
	}
	return client, nil
}
