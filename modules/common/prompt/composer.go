package prompt

import (
	"fmt"
	"strings"

	"muse-studio-server/modules/common/lexicon"
)

// SimilarityControls - 차원별 유사도 강도 (0~100)
type SimilarityControls struct {
	Character  int `json:"character"`
	Product    int `json:"product"`
	Background int `json:"background"`
}

// Locks - 유사도 잠금 플래그
// 잠금이 켜지면 해당 차원은 수치와 무관하게 STRICT(100%)로 강제됨.
// Background에는 잠금 차원이 없음 (의도된 비대칭 - 원 설계 유지)
type Locks struct {
	Character bool `json:"character"`
	Product   bool `json:"product"`
}

// AdsOptimization - 광고 모드 전용 마케팅 설정 번들
// WorkflowMode가 ads가 아니면 프롬프트에 절대 포함되지 않음
type AdsOptimization struct {
	Objective       string                   `json:"objective"`
	SellingAngle    string                   `json:"selling_angle"`
	TrustBuilder    string                   `json:"trust_builder"`
	Emphasis        string                   `json:"emphasis"`
	Lighting        string                   `json:"lighting"`
	Composition     string                   `json:"composition"`
	MarketingStyles []lexicon.MarketingStyle `json:"marketing_styles"`
}

// ComposeRequest - 프롬프트 조합에 필요한 모든 설정
type ComposeRequest struct {
	SystemMode      lexicon.SystemMode
	WorkflowMode    lexicon.WorkflowMode
	ArtStyle        lexicon.ArtStyle
	LookStyles      []lexicon.VisualLookStyle
	Language        lexicon.Language
	Similarity      SimilarityControls
	Locks           Locks
	AdsOpt          *AdsOptimization
	TaskTrailer     string // 호출 능력별 마무리 지시 (분석/생성/스크립트)
	UserInstruction string // 사용자 자유 입력 (항상 마지막)
}

// ResolveSimilarityClause - 잠금/수치 → 유사도 문구
// 잠금이 수치를 항상 이김 (lock=true, percent=17 → STRICT, "17%" 아님)
func ResolveSimilarityClause(lock bool, percent int) string {
	if lock {
		return "STRICT (100%) - preserve the reference identity exactly, no deviation allowed"
	}
	return fmt.Sprintf("%d%% match strength to the reference", percent)
}

// Compose - 설정 → 단일 지시 문자열 (순수 함수, 동일 입력 = 동일 출력)
// 섹션 순서 고정: 프리앰블 → 전략 → 언어 → 스타일 잠금 → 룩 스타일 →
// (ads 블록) → 유사도 블록 → 태스크 트레일러 → 사용자 지시
func Compose(req ComposeRequest) string {
	var b strings.Builder

	// 1. 역할 프리앰블
	b.WriteString(lexicon.SystemPreambles[req.SystemMode])
	b.WriteString("\n\n")

	// 2. 워크플로우 전략 (모드별 우선순위 문장, 그대로 포함)
	b.WriteString(lexicon.WorkflowStrategies[req.WorkflowMode])
	b.WriteString("\n\n")

	// 3. 언어 지시
	b.WriteString(lexicon.LanguageDirectives[req.Language])
	b.WriteString("\n\n")

	// 4. 아트 스타일 잠금
	b.WriteString("[STYLE LOCK]\n")
	b.WriteString(lexicon.ArtStyleLocks[req.ArtStyle])
	b.WriteString("\n")

	// 5. 룩 스타일 태그
	if len(req.LookStyles) > 0 {
		b.WriteString("\n[VISUAL LOOK]\n")
		fragments := make([]string, 0, len(req.LookStyles))
		for _, look := range req.LookStyles {
			fragments = append(fragments, lexicon.LookStyleFragments[look])
		}
		b.WriteString(strings.Join(fragments, "; "))
		b.WriteString("\n")
	}

	// 6. 광고 최적화 블록 (ads 모드 + 번들이 있을 때만, 아니면 아무것도 안 씀)
	if req.WorkflowMode == lexicon.ModeAds && req.AdsOpt != nil {
		b.WriteString("\n[ADS OPTIMIZATION]\n")
		writeAdsLine(&b, "Objective", req.AdsOpt.Objective)
		writeAdsLine(&b, "Selling angle", req.AdsOpt.SellingAngle)
		writeAdsLine(&b, "Trust builder", req.AdsOpt.TrustBuilder)
		writeAdsLine(&b, "Emphasis", req.AdsOpt.Emphasis)
		writeAdsLine(&b, "Lighting", req.AdsOpt.Lighting)
		writeAdsLine(&b, "Composition", req.AdsOpt.Composition)
		if len(req.AdsOpt.MarketingStyles) > 0 {
			fragments := make([]string, 0, len(req.AdsOpt.MarketingStyles))
			for _, style := range req.AdsOpt.MarketingStyles {
				fragments = append(fragments, lexicon.MarketingStyleFragments[style])
			}
			b.WriteString("- Marketing styles: ")
			b.WriteString(strings.Join(fragments, "; "))
			b.WriteString("\n")
		}
	}

	// 7. 유사도 블록 (Background는 잠금 차원 없음)
	b.WriteString("\n[IDENTITY SIMILARITY]\n")
	b.WriteString("- Character: ")
	b.WriteString(ResolveSimilarityClause(req.Locks.Character, req.Similarity.Character))
	b.WriteString("\n- Product: ")
	b.WriteString(ResolveSimilarityClause(req.Locks.Product, req.Similarity.Product))
	b.WriteString("\n- Background: ")
	b.WriteString(ResolveSimilarityClause(false, req.Similarity.Background))
	b.WriteString("\n")

	// 8. 태스크 트레일러
	if req.TaskTrailer != "" {
		b.WriteString("\n")
		b.WriteString(req.TaskTrailer)
		b.WriteString("\n")
	}

	// 9. 사용자 자유 지시 (항상 마지막)
	if req.UserInstruction != "" {
		b.WriteString("\n[USER DIRECTION]\n")
		b.WriteString(req.UserInstruction)
		b.WriteString("\n")
	}

	return b.String()
}

// writeAdsLine - 값이 있는 필드만 라벨 라인으로 출력
func writeAdsLine(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.WriteString("- ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
