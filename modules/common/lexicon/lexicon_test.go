package lexicon

import "testing"

// 모든 열거값이 프래그먼트 테이블에 존재하는지 검증 (누락 = 설정 결함)

func TestWorkflowStrategiesTotality(t *testing.T) {
	for _, mode := range AllWorkflowModes() {
		if WorkflowStrategies[mode] == "" {
			t.Errorf("WorkflowStrategies missing entry for %q", mode)
		}
	}
	if len(WorkflowStrategies) != len(AllWorkflowModes()) {
		t.Errorf("WorkflowStrategies has %d entries, want %d", len(WorkflowStrategies), len(AllWorkflowModes()))
	}
}

func TestSystemPreamblesTotality(t *testing.T) {
	for _, mode := range AllSystemModes() {
		if SystemPreambles[mode] == "" {
			t.Errorf("SystemPreambles missing entry for %q", mode)
		}
	}
}

func TestArtStyleLocksTotality(t *testing.T) {
	for _, style := range AllArtStyles() {
		if ArtStyleLocks[style] == "" {
			t.Errorf("ArtStyleLocks missing entry for %q", style)
		}
	}
	if len(ArtStyleLocks) != len(AllArtStyles()) {
		t.Errorf("ArtStyleLocks has %d entries, want %d", len(ArtStyleLocks), len(AllArtStyles()))
	}
}

func TestMarketingStyleFragmentsTotality(t *testing.T) {
	for _, style := range AllMarketingStyles() {
		if MarketingStyleFragments[style] == "" {
			t.Errorf("MarketingStyleFragments missing entry for %q", style)
		}
	}
}

func TestLookStyleFragmentsTotality(t *testing.T) {
	for _, look := range AllVisualLookStyles() {
		if LookStyleFragments[look] == "" {
			t.Errorf("LookStyleFragments missing entry for %q", look)
		}
	}
}

func TestLanguageDirectivesTotality(t *testing.T) {
	for _, lang := range AllLanguages() {
		if LanguageDirectives[lang] == "" {
			t.Errorf("LanguageDirectives missing entry for %q", lang)
		}
	}
}

func TestResolutionPresetsTotality(t *testing.T) {
	want := map[ResolutionLevel]string{
		ResolutionLow:    "1K",
		ResolutionMedium: "2K",
		ResolutionHigh:   "4K",
	}
	for _, level := range AllResolutionLevels() {
		if ResolutionPresets[level] != want[level] {
			t.Errorf("ResolutionPresets[%q] = %q, want %q", level, ResolutionPresets[level], want[level])
		}
	}
}

func TestIsValidAspectRatio(t *testing.T) {
	for _, ratio := range AspectRatios {
		if !IsValidAspectRatio(ratio) {
			t.Errorf("IsValidAspectRatio(%q) = false, want true", ratio)
		}
	}
	if IsValidAspectRatio("2:1") {
		t.Error("IsValidAspectRatio(\"2:1\") = true, want false")
	}
	if IsValidAspectRatio("") {
		t.Error("IsValidAspectRatio(\"\") = true, want false")
	}
}
