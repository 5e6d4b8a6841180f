package prompt

import (
	"muse-studio-server/modules/common/lexicon"
	"muse-studio-server/modules/common/model"
)

// FromSettings - API 요청의 평문 설정값 → ComposeRequest
// 각 능력 모듈(분석/생성/스크립트)이 같은 변환을 쓰도록 한 곳에 모음
func FromSettings(
	workflowMode, systemMode, artStyle string,
	lookStyles []string,
	language string,
	sim model.SimilarityInput,
	locks model.LockInput,
	ads *model.AdsInput,
	trailer, userInstruction string,
) ComposeRequest {
	looks := make([]lexicon.VisualLookStyle, 0, len(lookStyles))
	for _, look := range lookStyles {
		looks = append(looks, lexicon.VisualLookStyle(look))
	}

	var adsOpt *AdsOptimization
	if ads != nil {
		marketingStyles := make([]lexicon.MarketingStyle, 0, len(ads.MarketingStyles))
		for _, style := range ads.MarketingStyles {
			marketingStyles = append(marketingStyles, lexicon.MarketingStyle(style))
		}
		adsOpt = &AdsOptimization{
			Objective:       ads.Objective,
			SellingAngle:    ads.SellingAngle,
			TrustBuilder:    ads.TrustBuilder,
			Emphasis:        ads.Emphasis,
			Lighting:        ads.Lighting,
			Composition:     ads.Composition,
			MarketingStyles: marketingStyles,
		}
	}

	return ComposeRequest{
		SystemMode:   lexicon.SystemMode(systemMode),
		WorkflowMode: lexicon.WorkflowMode(workflowMode),
		ArtStyle:     lexicon.ArtStyle(artStyle),
		LookStyles:   looks,
		Language:     lexicon.Language(language),
		Similarity: SimilarityControls{
			Character:  sim.Character,
			Product:    sim.Product,
			Background: sim.Background,
		},
		Locks: Locks{
			Character: locks.Character,
			Product:   locks.Product,
		},
		AdsOpt:          adsOpt,
		TaskTrailer:     trailer,
		UserInstruction: userInstruction,
	}
}
