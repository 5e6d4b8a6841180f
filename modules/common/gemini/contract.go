package gemini

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

// AnalysisResult - 피사체 분석 결과 (구조화 JSON 응답 계약)
type AnalysisResult struct {
	Identity               string   `json:"identity"`
	StyleReport            string   `json:"style_report"`
	ConsistencyGuidelines  string   `json:"consistency_guidelines"`
	CompositionPlan        string   `json:"composition_plan"`
	Caption                string   `json:"caption"`
	Hashtags               []string `json:"hashtags"`
	VoiceOverScript        string   `json:"vo_script"`
	ConversionOptimization string   `json:"conversion_note,omitempty"`
}

// Scene - 프로덕션 스크립트의 한 씬
type Scene struct {
	SceneID     int    `json:"scene_id"`
	Description string `json:"description"`
	VoiceOver   string `json:"vo_script"`
}

// ProductionScript - 씬 스크립트 결과 (전 필드 optional, lenient 계약)
type ProductionScript struct {
	Strategy        string   `json:"strategy"`
	Hook            string   `json:"hook"`
	StorylineOption []string `json:"storyline_options"`
	Scenes          []Scene  `json:"scenes"`
	Caption         string   `json:"caption"`
	Hashtags        []string `json:"hashtags"`
}

// AnalysisSchema - 분석 응답 스키마 (conversion_note만 optional)
func AnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"identity":               {Type: genai.TypeString, Description: "Who/what the subject is, in one dense paragraph"},
			"style_report":           {Type: genai.TypeString, Description: "Observed visual style of the references"},
			"consistency_guidelines": {Type: genai.TypeString, Description: "Rules to keep the subject consistent across generations"},
			"composition_plan":       {Type: genai.TypeString, Description: "Concrete composition plan for the next content piece"},
			"caption":                {Type: genai.TypeString},
			"hashtags":               {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"vo_script":              {Type: genai.TypeString, Description: "Short voice-over script for the content"},
			"conversion_note":        {Type: genai.TypeString, Description: "Optional conversion-optimization note (ads mode)"},
		},
		Required: []string{"identity", "style_report", "consistency_guidelines", "composition_plan", "caption", "hashtags", "vo_script"},
	}
}

// SceneScriptSchema - 씬 스크립트 응답 스키마 (required 없음)
func SceneScriptSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"strategy":          {Type: genai.TypeString},
			"hook":              {Type: genai.TypeString},
			"storyline_options": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"scenes": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"scene_id":    {Type: genai.TypeInteger},
						"description": {Type: genai.TypeString},
						"vo_script":   {Type: genai.TypeString},
					},
				},
			},
			"caption":  {Type: genai.TypeString},
			"hashtags": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
	}
}

// ParseAnalysis - 분석 응답 텍스트 파싱
// 디코딩 실패는 에러가 아니라 빈 레코드로 수렴 (의도된 silent-degradation 정책:
// 호출자는 빠진 필드를 "미제공"으로 취급해야 함)
func ParseAnalysis(raw string) AnalysisResult {
	var result AnalysisResult
	fragment := extractJSONFragment(raw)
	if fragment == "" {
		log.Printf("⚠️  [Contract] Empty analysis payload, returning empty record")
		return result
	}
	if err := json.Unmarshal([]byte(fragment), &result); err != nil {
		log.Printf("⚠️  [Contract] Failed to decode analysis payload: %v", err)
		return AnalysisResult{}
	}
	return result
}

// ParseSceneScript - 씬 스크립트 응답 텍스트 파싱 (실패 → 빈 레코드)
func ParseSceneScript(raw string) ProductionScript {
	var script ProductionScript
	fragment := extractJSONFragment(raw)
	if fragment == "" {
		log.Printf("⚠️  [Contract] Empty scene script payload, returning empty record")
		return script
	}
	if err := json.Unmarshal([]byte(fragment), &script); err != nil {
		log.Printf("⚠️  [Contract] Failed to decode scene script payload: %v", err)
		return ProductionScript{}
	}
	return script
}

// ExtractText - 응답 candidates에서 첫 텍스트 파트 추출
func ExtractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}

// ExtractImageDataURL - 응답에서 첫 인라인 이미지를 data URL로 추출
// 미디어 세그먼트가 없으면 "" (부재 마커, 에러 아님)
func ExtractImageDataURL(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				encoded := base64.StdEncoding.EncodeToString(part.InlineData.Data)
				return fmt.Sprintf("data:%s;base64,%s", mimeType, encoded)
			}
		}
	}
	return ""
}

// ExtractAudio - 첫 candidate에서 오디오 인라인 데이터 추출
// 없으면 nil + "" (부재 마커, 에러 아님)
func ExtractAudio(resp *genai.GenerateContentResponse) ([]byte, string) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, ""
	}
	for _, part := range candidate.Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			mimeType := part.InlineData.MIMEType
			if mimeType == "" {
				mimeType = "audio/pcm"
			}
			return part.InlineData.Data, mimeType
		}
	}
	return nil, ""
}

// extractJSONFragment - 코드 펜스 제거 후 JSON 본문만 잘라냄
// 모델이 ```json ... ``` 으로 감싸거나 앞뒤에 말을 붙이는 경우 대응
func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

// trimCodeFence - 마크다운 코드 펜스 제거
func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
