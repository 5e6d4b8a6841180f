package scenescript

import (
	"muse-studio-server/modules/common/gemini"
	"muse-studio-server/modules/common/model"
)

// ScriptRequest - 숏폼 프로덕션 스크립트 생성 요청
type ScriptRequest struct {
	References      []model.ReferenceInput `json:"references,omitempty"`
	WorkflowMode    string                 `json:"workflow_mode"`
	SystemMode      string                 `json:"system_mode"`
	ArtStyle        string                 `json:"art_style"`
	LookStyles      []string               `json:"look_styles,omitempty"`
	Language        string                 `json:"language"`
	Similarity      model.SimilarityInput  `json:"similarity"`
	Locks           model.LockInput        `json:"locks"`
	Ads             *model.AdsInput        `json:"ads,omitempty"`
	SceneCount      int                    `json:"scene_count"`       // 기본 4
	ProductBrief    string                 `json:"product_brief"`     // 무엇을 다루는 콘텐츠인지
	UserInstruction string                 `json:"user_instruction,omitempty"`
}

// ScriptResponse - 스크립트 생성 응답
type ScriptResponse struct {
	Success      bool                    `json:"success"`
	Script       gemini.ProductionScript `json:"script,omitempty"`
	ErrorMessage string                  `json:"error_message,omitempty"`
}
