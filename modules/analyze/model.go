package analyze

import (
	"muse-studio-server/modules/common/gemini"
	"muse-studio-server/modules/common/model"
)

// AnalyzeRequest - 피사체 분석 요청
type AnalyzeRequest struct {
	References      []model.ReferenceInput `json:"references"`
	WorkflowMode    string                 `json:"workflow_mode"` // creator | ads
	SystemMode      string                 `json:"system_mode"`   // photo | reels
	ArtStyle        string                 `json:"art_style"`
	LookStyles      []string               `json:"look_styles,omitempty"`
	Language        string                 `json:"language"`
	Similarity      model.SimilarityInput  `json:"similarity"`
	Locks           model.LockInput        `json:"locks"`
	Ads             *model.AdsInput        `json:"ads,omitempty"`
	UserInstruction string                 `json:"user_instruction,omitempty"`
}

// AnalyzeResponse - 피사체 분석 응답
type AnalyzeResponse struct {
	Success      bool                  `json:"success"`
	Result       gemini.AnalysisResult `json:"result,omitempty"`
	ErrorMessage string                `json:"error_message,omitempty"`
}
