package analyze

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

type Service struct {
	storageClient *storage.Client
}

func NewService(storageClient *storage.Client) *Service {
	return &Service{
		storageClient: storageClient,
	}
}

// Analyze - 레퍼런스 이미지 기반 피사체 분석
// 구조화 JSON 응답 계약(AnalysisSchema)으로 호출하고 lenient 파싱
func (s *Service) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	cfg := config.GetConfig()

	// 1. 레퍼런스 이미지 해석 (data URL 또는 attach ID)
	refs, err := s.storageClient.ResolveReferences(req.References)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve references: %w", err)
	}

	// 2. 프롬프트 조합
	composed := prompt.Compose(prompt.FromSettings(
		req.WorkflowMode, req.SystemMode, req.ArtStyle,
		req.LookStyles, req.Language,
		req.Similarity, req.Locks, req.Ads,
		analysisTrailer, req.UserInstruction,
	))

	// 3. 페이로드 구성 (프롬프트 텍스트 → 역할 라벨 + 이미지 순서 유지)
	parts := []*genai.Part{genai.NewPartFromText(composed)}
	parts = append(parts, gemini.BuildParts(refs)...)

	// 4. 호출마다 새 클라이언트
	client, err := gemini.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("🔍 [Analyze] Calling %s with %d references", cfg.GeminiTextModel, len(refs))

	result, err := client.Models.GenerateContent(
		ctx,
		cfg.GeminiTextModel,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   gemini.AnalysisSchema(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini analyze call failed: %w", err)
	}

	// 5. 파싱 실패는 빈 레코드로 수렴 (호출자는 빈 필드를 미제공으로 취급)
	parsed := gemini.ParseAnalysis(gemini.ExtractText(result))

	log.Printf("✅ [Analyze] Analysis complete (identity: %d chars, hashtags: %d)",
		len(parsed.Identity), len(parsed.Hashtags))

	return &AnalyzeResponse{
		Success: true,
		Result:  parsed,
	}, nil
}
