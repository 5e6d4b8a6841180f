package lexicon

// 프롬프트 조합에 쓰이는 모든 열거형과 자연어 프래그먼트 테이블.
// 모든 열거값은 반드시 테이블에 항목이 있어야 함 (누락 = 설정 결함, 테스트로 검증)

// WorkflowMode - 스튜디오 워크플로우 모드
type WorkflowMode string

const (
	ModeCreator WorkflowMode = "creator" // 캐릭터(페르소나) 우선
	ModeAds     WorkflowMode = "ads"     // 제품 우선
)

// SystemMode - 제작 시스템 모드 (피드 사진 vs 숏폼)
type SystemMode string

const (
	SystemPhoto SystemMode = "photo"
	SystemReels SystemMode = "reels"
)

// ArtStyle - 아트 스타일
type ArtStyle string

const (
	StyleRealistic  ArtStyle = "realistic"
	StyleCinematic  ArtStyle = "cinematic"
	StyleFilm       ArtStyle = "film"
	StyleAnime      ArtStyle = "anime"
	StyleWebtoon    ArtStyle = "webtoon"
	StyleWatercolor ArtStyle = "watercolor"
	StyleClay3D     ArtStyle = "clay3d"
)

// MarketingStyle - 광고 마케팅 스타일 (ads 모드 전용)
type MarketingStyle string

const (
	MarketingLuxury    MarketingStyle = "luxury"
	MarketingMinimal   MarketingStyle = "minimal"
	MarketingVibrant   MarketingStyle = "vibrant"
	MarketingTrust     MarketingStyle = "trust"
	MarketingUrgency   MarketingStyle = "urgency"
	MarketingLifestyle MarketingStyle = "lifestyle"
)

// VisualLookStyle - 비주얼 룩 태그
type VisualLookStyle string

const (
	LookClean   VisualLookStyle = "clean"
	LookY2K     VisualLookStyle = "y2k"
	LookVintage VisualLookStyle = "vintage"
	LookStreet  VisualLookStyle = "street"
	LookOffice  VisualLookStyle = "office"
	LookGlam    VisualLookStyle = "glam"
)

// Language - 출력 언어
type Language string

const (
	LangKorean   Language = "ko"
	LangEnglish  Language = "en"
	LangJapanese Language = "ja"
	LangSpanish  Language = "es"
)

// ResolutionLevel - 출력 해상도 티어
type ResolutionLevel string

const (
	ResolutionLow    ResolutionLevel = "low"
	ResolutionMedium ResolutionLevel = "medium"
	ResolutionHigh   ResolutionLevel = "high"
)

// WorkflowStrategies - 모드별 전략 문장 (프롬프트에 그대로 포함됨)
var WorkflowStrategies = map[WorkflowMode]string{
	ModeCreator: "Creator workflow: the CHARACTER is the hero of this content. Prioritize the character's identity, face, and presence above everything else; products and props support the character, never the reverse.",
	ModeAds:     "Ads workflow: the PRODUCT is the hero of this content. Prioritize the product's appearance, branding, and desirability; any character on screen exists to present the product convincingly.",
}

// SystemPreambles - 시스템 모드별 역할 프리앰블
var SystemPreambles = map[SystemMode]string{
	SystemPhoto: "You are Muse Studio's AI content director producing a single polished social feed photograph.",
	SystemReels: "You are Muse Studio's AI content director producing short-form vertical video content frame by frame.",
}

// ArtStyleLocks - 아트 스타일 잠금 문구
var ArtStyleLocks = map[ArtStyle]string{
	StyleRealistic:  "Photorealistic rendering. True-to-life skin, fabric and material detail, no illustration or painterly traits.",
	StyleCinematic:  "Cinematic photography. Dramatic key lighting, film-grade color palette, strong mood and depth of field.",
	StyleFilm:       "Analog film photography. Visible grain, halation, slightly muted 35mm color chemistry.",
	StyleAnime:      "Japanese anime illustration. Clean line art, cel shading, expressive anime facial conventions.",
	StyleWebtoon:    "Korean webtoon illustration. Bold outlines, flat vivid coloring, vertical-scroll friendly framing.",
	StyleWatercolor: "Watercolor painting. Soft pigment bleed, paper texture, loose organic edges.",
	StyleClay3D:     "Stylized 3D clay render. Rounded toy-like forms, soft studio lighting, matte clay materials.",
}

// MarketingStyleFragments - 마케팅 스타일 설명 문구
var MarketingStyleFragments = map[MarketingStyle]string{
	MarketingLuxury:    "premium luxury mood, restrained palette, expensive materials",
	MarketingMinimal:   "minimal clean layout, generous negative space, one clear focal point",
	MarketingVibrant:   "high-energy vibrant colors, bold contrast, scroll-stopping saturation",
	MarketingTrust:     "trustworthy and credible tone, natural light, honest unexaggerated presentation",
	MarketingUrgency:   "urgency-driven composition, dynamic diagonals, attention-grabbing emphasis",
	MarketingLifestyle: "authentic lifestyle context, candid in-use moment, relatable everyday setting",
}

// LookStyleFragments - 룩 스타일 태그 문구
var LookStyleFragments = map[VisualLookStyle]string{
	LookClean:   "clean-girl aesthetic, dewy natural finish",
	LookY2K:     "Y2K retro-futurist styling, glossy chrome accents",
	LookVintage: "vintage film look, warm faded tones",
	LookStreet:  "streetwear edge, urban backdrop energy",
	LookOffice:  "polished office-siren styling, tailored silhouettes",
	LookGlam:    "full glam styling, high-shine evening finish",
}

// LanguageDirectives - 언어 지시 문구
var LanguageDirectives = map[Language]string{
	LangKorean:   "Write every caption, hashtag, and script line in Korean.",
	LangEnglish:  "Write every caption, hashtag, and script line in English.",
	LangJapanese: "Write every caption, hashtag, and script line in Japanese.",
	LangSpanish:  "Write every caption, hashtag, and script line in Spanish.",
}

// ResolutionPresets - 해상도 티어 → Gemini ImageConfig 사이즈 프리셋
var ResolutionPresets = map[ResolutionLevel]string{
	ResolutionLow:    "1K",
	ResolutionMedium: "2K",
	ResolutionHigh:   "4K",
}

// AspectRatios - 지원하는 비율 (ImageConfig.AspectRatio에 그대로 전달)
var AspectRatios = []string{"1:1", "3:4", "4:3", "9:16", "16:9"}

// AllWorkflowModes - 전체 열거 (totality 테스트용)
func AllWorkflowModes() []WorkflowMode {
	return []WorkflowMode{ModeCreator, ModeAds}
}

func AllSystemModes() []SystemMode {
	return []SystemMode{SystemPhoto, SystemReels}
}

func AllArtStyles() []ArtStyle {
	return []ArtStyle{StyleRealistic, StyleCinematic, StyleFilm, StyleAnime, StyleWebtoon, StyleWatercolor, StyleClay3D}
}

func AllMarketingStyles() []MarketingStyle {
	return []MarketingStyle{MarketingLuxury, MarketingMinimal, MarketingVibrant, MarketingTrust, MarketingUrgency, MarketingLifestyle}
}

func AllVisualLookStyles() []VisualLookStyle {
	return []VisualLookStyle{LookClean, LookY2K, LookVintage, LookStreet, LookOffice, LookGlam}
}

func AllLanguages() []Language {
	return []Language{LangKorean, LangEnglish, LangJapanese, LangSpanish}
}

func AllResolutionLevels() []ResolutionLevel {
	return []ResolutionLevel{ResolutionLow, ResolutionMedium, ResolutionHigh}
}

// IsValidAspectRatio - 비율 검증
func IsValidAspectRatio(ratio string) bool {
	for _, r := range AspectRatios {
		if r == ratio {
			return true
		}
	}
	return false
}
