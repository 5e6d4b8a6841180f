package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"google.golang.org/genai"

	"muse-studio-server/modules/common/config"
	"muse-studio-server/modules/common/gemini"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Synthesize - 스크립트 텍스트 → 음성 (프리셋 보이스 고정)
// 오디오 파트가 없으면 에러가 아니라 부재 응답 (success=false)
func (s *Service) Synthesize(ctx context.Context, req *SpeechRequest) (*SpeechResponse, error) {
	cfg := config.GetConfig()

	client, err := gemini.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("🔊 [Speech] Synthesizing %d chars with voice %s", len(req.Text), cfg.GeminiTTSVoice)

	result, err := client.Models.GenerateContent(
		ctx,
		cfg.GeminiTTSModel,
		[]*genai.Content{
			genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(req.Text)}, genai.RoleUser),
		},
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
						VoiceName: cfg.GeminiTTSVoice,
					},
				},
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini tts call failed: %w", err)
	}

	audio, mimeType := gemini.ExtractAudio(result)
	if audio == nil {
		log.Printf("⚠️  [Speech] No audio returned from model")
		return &SpeechResponse{
			Success:      false,
			ErrorMessage: "No audio generated",
		}, nil
	}

	log.Printf("✅ [Speech] Audio synthesized: %d bytes (%s)", len(audio), mimeType)

	return &SpeechResponse{
		Success:     true,
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
		MimeType:    mimeType,
	}, nil
}
