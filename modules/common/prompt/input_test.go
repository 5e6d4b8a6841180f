package prompt

import (
	"testing"

	"muse-studio-server/modules/common/lexicon"
	"muse-studio-server/modules/common/model"
)

func TestFromSettingsMapsEverything(t *testing.T) {
	req := FromSettings(
		"ads", "reels", "anime",
		[]string{"y2k", "street"},
		"ja",
		model.SimilarityInput{Character: 70, Product: 90, Background: 20},
		model.LockInput{Character: true},
		&model.AdsInput{
			Objective:       "awareness",
			MarketingStyles: []string{"vibrant", "urgency"},
		},
		"trailer text", "user text",
	)

	if req.WorkflowMode != lexicon.ModeAds || req.SystemMode != lexicon.SystemReels {
		t.Error("modes not mapped")
	}
	if req.ArtStyle != lexicon.StyleAnime || req.Language != lexicon.LangJapanese {
		t.Error("style/language not mapped")
	}
	if len(req.LookStyles) != 2 || req.LookStyles[0] != lexicon.LookY2K {
		t.Errorf("look styles not mapped: %v", req.LookStyles)
	}
	if !req.Locks.Character || req.Similarity.Product != 90 {
		t.Error("similarity/locks not mapped")
	}
	if req.AdsOpt == nil || req.AdsOpt.Objective != "awareness" {
		t.Fatal("ads bundle not mapped")
	}
	if len(req.AdsOpt.MarketingStyles) != 2 || req.AdsOpt.MarketingStyles[1] != lexicon.MarketingUrgency {
		t.Errorf("marketing styles not mapped: %v", req.AdsOpt.MarketingStyles)
	}
	if req.TaskTrailer != "trailer text" || req.UserInstruction != "user text" {
		t.Error("trailer/user instruction not mapped")
	}
}

func TestFromSettingsNilAds(t *testing.T) {
	req := FromSettings(
		"creator", "photo", "realistic",
		nil, "en",
		model.SimilarityInput{}, model.LockInput{}, nil,
		"", "",
	)

	if req.AdsOpt != nil {
		t.Error("nil ads input must stay nil")
	}
	if len(req.LookStyles) != 0 {
		t.Error("nil look styles must map to empty slice")
	}
}
