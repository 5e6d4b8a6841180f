package generateimage

import (
	"testing"

	"muse-studio-server/modules/common/model"
)

func TestValidateEditRequiresSource(t *testing.T) {
	req := &ProcessRequest{IsEdit: true}
	if msg := validate(req); msg == "" {
		t.Error("edit without a source reference must be rejected")
	}

	// 생성은 프롬프트만으로도 가능
	req = &ProcessRequest{}
	if msg := validate(req); msg != "" {
		t.Errorf("prompt-only generation rejected: %s", msg)
	}
}

func TestValidateAspectRatio(t *testing.T) {
	refs := []model.ReferenceInput{{DataURL: "data:image/png;base64,AA==", Role: "character"}}

	for _, ratio := range []string{"1:1", "3:4", "4:3", "9:16", "16:9"} {
		req := &ProcessRequest{References: refs, AspectRatio: ratio}
		if msg := validate(req); msg != "" {
			t.Errorf("ratio %q rejected: %s", ratio, msg)
		}
	}

	req := &ProcessRequest{References: refs, AspectRatio: "21:9"}
	if msg := validate(req); msg == "" {
		t.Error("unsupported ratio 21:9 must be rejected")
	}

	// 비율 생략은 허용 (모델 기본값 사용)
	req = &ProcessRequest{References: refs}
	if msg := validate(req); msg != "" {
		t.Errorf("empty ratio rejected: %s", msg)
	}
}

func TestToJobInputCarriesEverything(t *testing.T) {
	req := &ProcessRequest{
		References:      []model.ReferenceInput{{AttachID: 42, Role: "product"}},
		WorkflowMode:    "ads",
		SystemMode:      "photo",
		ArtStyle:        "cinematic",
		LookStyles:      []string{"clean", "glam"},
		Language:        "ko",
		Similarity:      model.SimilarityInput{Character: 80, Product: 100, Background: 30},
		Locks:           model.LockInput{Product: true},
		Ads:             &model.AdsInput{Objective: "conversion"},
		AspectRatio:     "9:16",
		Resolution:      "high",
		IsEdit:          false,
		UserInstruction: "make it pop",
		UserID:          "user-1",
	}

	input := req.ToJobInput()

	if input.WorkflowMode != "ads" || input.ArtStyle != "cinematic" {
		t.Error("mode/style not carried into job input")
	}
	if len(input.References) != 1 || input.References[0].AttachID != 42 {
		t.Error("references not carried into job input")
	}
	if !input.Locks.Product || input.Similarity.Background != 30 {
		t.Error("similarity/locks not carried into job input")
	}
	if input.Ads == nil || input.Ads.Objective != "conversion" {
		t.Error("ads bundle not carried into job input")
	}
	if input.AspectRatio != "9:16" || input.Resolution != "high" {
		t.Error("output settings not carried into job input")
	}
}
