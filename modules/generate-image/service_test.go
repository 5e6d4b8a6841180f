package generateimage

import (
	"testing"

	"muse-studio-server/modules/common/config"
	"muse-studio-server/modules/common/model"
)

var testConfig = &config.Config{
	GeminiImageModel: "image-model",
	GeminiEditModel:  "edit-model",
}

func TestSelectModelConfigEditIgnoresSizing(t *testing.T) {
	// 수정 요청은 비율/해상도가 있어도 절대 ImageConfig를 싣지 않음
	input := model.JobInputData{
		IsEdit:      true,
		AspectRatio: "16:9",
		Resolution:  "high",
	}

	modelName, genConfig := selectModelConfig(testConfig, input)

	if modelName != "edit-model" {
		t.Errorf("edit job got model %q, want edit-model", modelName)
	}
	if genConfig.ImageConfig != nil {
		t.Errorf("edit job carries ImageConfig %+v, want nil", genConfig.ImageConfig)
	}
}

func TestSelectModelConfigGenerateWithRatio(t *testing.T) {
	input := model.JobInputData{
		AspectRatio: "9:16",
		Resolution:  "high",
	}

	modelName, genConfig := selectModelConfig(testConfig, input)

	if modelName != "image-model" {
		t.Errorf("generate job got model %q, want image-model", modelName)
	}
	if genConfig.ImageConfig == nil {
		t.Fatal("generate job with ratio must carry ImageConfig")
	}
	if genConfig.ImageConfig.AspectRatio != "9:16" {
		t.Errorf("AspectRatio = %q, want 9:16", genConfig.ImageConfig.AspectRatio)
	}
	if genConfig.ImageConfig.ImageSize != "4K" {
		t.Errorf("ImageSize = %q, want 4K", genConfig.ImageConfig.ImageSize)
	}
}

func TestSelectModelConfigResolutionDefaultsToMedium(t *testing.T) {
	for _, resolution := range []string{"", "ultra", "8K"} {
		input := model.JobInputData{
			AspectRatio: "1:1",
			Resolution:  resolution,
		}

		_, genConfig := selectModelConfig(testConfig, input)

		if genConfig.ImageConfig == nil {
			t.Fatalf("resolution %q: ImageConfig missing", resolution)
		}
		if genConfig.ImageConfig.ImageSize != "2K" {
			t.Errorf("resolution %q: ImageSize = %q, want 2K", resolution, genConfig.ImageConfig.ImageSize)
		}
	}
}

func TestSelectModelConfigGenerateWithoutRatio(t *testing.T) {
	// 비율 생략 시 모델 기본 geometry 사용, ImageConfig 없음
	input := model.JobInputData{Resolution: "high"}

	modelName, genConfig := selectModelConfig(testConfig, input)

	if modelName != "image-model" {
		t.Errorf("generate job got model %q, want image-model", modelName)
	}
	if genConfig.ImageConfig != nil {
		t.Errorf("ratio-less generate carries ImageConfig %+v, want nil", genConfig.ImageConfig)
	}
}
