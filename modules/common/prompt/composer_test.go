package prompt

import (
	"strings"
	"testing"

	"muse-studio-server/modules/common/lexicon"
)

func baseRequest() ComposeRequest {
	return ComposeRequest{
		SystemMode:   lexicon.SystemPhoto,
		WorkflowMode: lexicon.ModeCreator,
		ArtStyle:     lexicon.StyleRealistic,
		Language:     lexicon.LangEnglish,
		Similarity:   SimilarityControls{Character: 80, Product: 60, Background: 40},
	}
}

func TestResolveSimilarityClauseLockDominates(t *testing.T) {
	clause := ResolveSimilarityClause(true, 17)
	if !strings.Contains(clause, "STRICT") || !strings.Contains(clause, "100%") {
		t.Errorf("locked clause = %q, want strict/100%% clause", clause)
	}
	if strings.Contains(clause, "17") {
		t.Errorf("locked clause leaked numeric percentage: %q", clause)
	}
}

func TestResolveSimilarityClauseUnlocked(t *testing.T) {
	clause := ResolveSimilarityClause(false, 17)
	if !strings.Contains(clause, "17%") {
		t.Errorf("unlocked clause = %q, want literal percentage", clause)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	req := baseRequest()
	req.LookStyles = []lexicon.VisualLookStyle{lexicon.LookY2K, lexicon.LookStreet}
	req.UserInstruction = "golden hour rooftop"

	first := Compose(req)
	second := Compose(req)
	if first != second {
		t.Error("Compose is not deterministic for identical input")
	}
}

func TestComposeContainsLexiconFragments(t *testing.T) {
	for _, style := range lexicon.AllArtStyles() {
		req := baseRequest()
		req.ArtStyle = style
		out := Compose(req)
		if !strings.Contains(out, lexicon.ArtStyleLocks[style]) {
			t.Errorf("composed prompt missing exact lexicon fragment for art style %q", style)
		}
	}
	for _, mode := range lexicon.AllWorkflowModes() {
		req := baseRequest()
		req.WorkflowMode = mode
		out := Compose(req)
		if !strings.Contains(out, lexicon.WorkflowStrategies[mode]) {
			t.Errorf("composed prompt missing strategy sentence for mode %q", mode)
		}
	}
	for _, lang := range lexicon.AllLanguages() {
		req := baseRequest()
		req.Language = lang
		out := Compose(req)
		if !strings.Contains(out, lexicon.LanguageDirectives[lang]) {
			t.Errorf("composed prompt missing language directive for %q", lang)
		}
	}
}

func TestComposeLockDominatesPercentage(t *testing.T) {
	req := baseRequest()
	req.Locks = Locks{Character: true}
	req.Similarity.Character = 17

	out := Compose(req)
	if !strings.Contains(out, "Character: STRICT (100%)") {
		t.Errorf("locked character similarity not rendered strict:\n%s", out)
	}
	if strings.Contains(out, "Character: 17%") {
		t.Error("locked character similarity leaked numeric percentage")
	}
	// Product는 잠금 없음 - 수치 그대로
	if !strings.Contains(out, "Product: 60% match strength") {
		t.Errorf("unlocked product similarity missing literal percentage:\n%s", out)
	}
}

func TestComposeBackgroundHasNoLock(t *testing.T) {
	req := baseRequest()
	req.Similarity.Background = 33
	out := Compose(req)
	if !strings.Contains(out, "Background: 33% match strength") {
		t.Errorf("background similarity must always use the numeric percentage:\n%s", out)
	}
}

func TestComposeAdsBlockOnlyInAdsMode(t *testing.T) {
	bundle := &AdsOptimization{
		Objective:       "drive first purchase",
		SellingAngle:    "limited winter edition",
		TrustBuilder:    "10k verified reviews",
		Emphasis:        "texture close-up",
		Lighting:        "soft window light",
		Composition:     "rule of thirds",
		MarketingStyles: []lexicon.MarketingStyle{lexicon.MarketingLuxury},
	}

	// creator 모드 - 번들이 있어도 한 글자도 새지 않아야 함
	req := baseRequest()
	req.WorkflowMode = lexicon.ModeCreator
	req.AdsOpt = bundle
	out := Compose(req)
	for _, leaked := range []string{"drive first purchase", "limited winter edition", "10k verified reviews", "ADS OPTIMIZATION"} {
		if strings.Contains(out, leaked) {
			t.Errorf("creator mode leaked ads field %q into prompt", leaked)
		}
	}

	// ads 모드 - 모든 필드가 라벨 라인으로 포함
	req.WorkflowMode = lexicon.ModeAds
	out = Compose(req)
	for _, want := range []string{
		"[ADS OPTIMIZATION]",
		"- Objective: drive first purchase",
		"- Selling angle: limited winter edition",
		"- Trust builder: 10k verified reviews",
		"- Emphasis: texture close-up",
		"- Lighting: soft window light",
		"- Composition: rule of thirds",
		lexicon.MarketingStyleFragments[lexicon.MarketingLuxury],
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ads mode prompt missing %q:\n%s", want, out)
		}
	}
}

func TestComposeAdsModeWithoutBundle(t *testing.T) {
	req := baseRequest()
	req.WorkflowMode = lexicon.ModeAds
	out := Compose(req)
	if strings.Contains(out, "[ADS OPTIMIZATION]") {
		t.Error("ads block rendered without a bundle (placeholder text forbidden)")
	}
}

func TestComposeUserInstructionIsLast(t *testing.T) {
	req := baseRequest()
	req.TaskTrailer = "[TASK]\nGenerate one image."
	req.UserInstruction = "remove the background"
	out := Compose(req)

	trailerIdx := strings.Index(out, "[TASK]")
	userIdx := strings.Index(out, "remove the background")
	if trailerIdx < 0 || userIdx < 0 {
		t.Fatalf("missing trailer or user instruction:\n%s", out)
	}
	if userIdx < trailerIdx {
		t.Error("user instruction must come after the task trailer")
	}
}
