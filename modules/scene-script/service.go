package scenescript

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"muse-studio-server/modules/common/config"
	"muse-studio-server/modules/common/gemini"
	"muse-studio-server/modules/common/prompt"
	"muse-studio-server/modules/common/storage"
)

const defaultSceneCount = 4

// resolveSceneCount - 요청 씬 수 보정 (0 이하는 기본값으로)
func resolveSceneCount(requested int) int {
	if requested <= 0 {
		return defaultSceneCount
	}
	return requested
}

// capScenes - 모델이 상한을 넘겨 반환한 씬을 잘라냄
func capScenes(script gemini.ProductionScript, max int) gemini.ProductionScript {
	if len(script.Scenes) > max {
		script.Scenes = script.Scenes[:max]
	}
	return script
}

type Service struct {
	storageClient *storage.Client
}

func NewService(storageClient *storage.Client) *Service {
	return &Service{
		storageClient: storageClient,
	}
}

// GenerateScript - 숏폼 프로덕션 스크립트 생성
// 레퍼런스 이미지는 선택 사항 (있으면 스크립트가 피사체에 맞춰짐)
func (s *Service) GenerateScript(ctx context.Context, req *ScriptRequest) (*ScriptResponse, error) {
	cfg := config.GetConfig()

	sceneCount := resolveSceneCount(req.SceneCount)

	// 1. 레퍼런스 해석 (없어도 됨)
	refs, err := s.storageClient.ResolveReferences(req.References)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve references: %w", err)
	}

	// 2. 프롬프트 조합
	composed := prompt.Compose(prompt.FromSettings(
		req.WorkflowMode, req.SystemMode, req.ArtStyle,
		req.LookStyles, req.Language,
		req.Similarity, req.Locks, req.Ads,
		scriptTrailer(sceneCount, req.ProductBrief), req.UserInstruction,
	))

	parts := []*genai.Part{genai.NewPartFromText(composed)}
	parts = append(parts, gemini.BuildParts(refs)...)

	// 3. 호출마다 새 클라이언트
	client, err := gemini.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("🎬 [SceneScript] Calling %s (scenes: %d, references: %d)",
		cfg.GeminiTextModel, sceneCount, len(refs))

	result, err := client.Models.GenerateContent(
		ctx,
		cfg.GeminiTextModel,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   gemini.SceneScriptSchema(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini scene script call failed: %w", err)
	}

	// 4. 파싱 실패 → 빈 스크립트, 씬 개수는 요청 상한으로 잘라냄
	script := capScenes(gemini.ParseSceneScript(gemini.ExtractText(result)), sceneCount)

	log.Printf("✅ [SceneScript] Script complete: %d scenes, hook: %d chars",
		len(script.Scenes), len(script.Hook))

	return &ScriptResponse{
		Success: true,
		Script:  script,
	}, nil
}
