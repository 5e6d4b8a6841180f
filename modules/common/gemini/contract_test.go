package gemini

import (
	"encoding/base64"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestParseAnalysisWellFormed(t *testing.T) {
	raw := `{"identity":"virtual model Yuna","style_report":"soft pastel","consistency_guidelines":"keep the mole","composition_plan":"waist-up","caption":"new drop","hashtags":["#muse","#ootd"],"vo_script":"hey everyone","conversion_note":"CTA in first line"}`

	result := ParseAnalysis(raw)
	if result.Identity != "virtual model Yuna" {
		t.Errorf("Identity = %q", result.Identity)
	}
	if len(result.Hashtags) != 2 || result.Hashtags[0] != "#muse" {
		t.Errorf("Hashtags = %v", result.Hashtags)
	}
	if result.ConversionOptimization != "CTA in first line" {
		t.Errorf("ConversionOptimization = %q", result.ConversionOptimization)
	}
}

func TestParseAnalysisStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"identity\":\"fenced\"}\n```"
	result := ParseAnalysis(raw)
	if result.Identity != "fenced" {
		t.Errorf("Identity = %q, want %q", result.Identity, "fenced")
	}
}

func TestParseAnalysisMalformedYieldsEmptyRecord(t *testing.T) {
	for _, raw := range []string{"", "   ", "not json at all", "{broken", "```\ngarbage\n```"} {
		result := ParseAnalysis(raw)
		if result.Identity != "" || result.Caption != "" || len(result.Hashtags) != 0 {
			t.Errorf("ParseAnalysis(%q) = %+v, want empty record", raw, result)
		}
	}
}

func TestParseSceneScriptLenient(t *testing.T) {
	// 일부 필드만 있어도 에러 없이 파싱 (required 없음)
	raw := `{"hook":"wait for it","scenes":[{"scene_id":1,"description":"unboxing","vo_script":"look at this"},{"scene_id":2,"description":"closeup"}]}`

	script := ParseSceneScript(raw)
	if script.Hook != "wait for it" {
		t.Errorf("Hook = %q", script.Hook)
	}
	if len(script.Scenes) != 2 {
		t.Fatalf("got %d scenes, want 2", len(script.Scenes))
	}
	if script.Scenes[0].SceneID != 1 || script.Scenes[1].SceneID != 2 {
		t.Errorf("scene ids = %d, %d", script.Scenes[0].SceneID, script.Scenes[1].SceneID)
	}
	if script.Strategy != "" {
		t.Errorf("absent Strategy should stay empty, got %q", script.Strategy)
	}
}

func TestParseSceneScriptMalformedYieldsEmptyRecord(t *testing.T) {
	script := ParseSceneScript("the model refused and wrote an apology instead")
	if script.Hook != "" || script.Strategy != "" || len(script.Scenes) != 0 {
		t.Errorf("malformed payload must collapse to empty record, got %+v", script)
	}
}

func TestAnalysisSchemaRequiredFields(t *testing.T) {
	schema := AnalysisSchema()
	required := map[string]bool{}
	for _, field := range schema.Required {
		required[field] = true
	}

	for _, field := range []string{"identity", "style_report", "consistency_guidelines", "composition_plan", "caption", "hashtags", "vo_script"} {
		if !required[field] {
			t.Errorf("field %q must be required", field)
		}
	}
	if required["conversion_note"] {
		t.Error("conversion_note must stay optional")
	}
	for field := range required {
		if _, ok := schema.Properties[field]; !ok {
			t.Errorf("required field %q missing from properties", field)
		}
	}
}

func TestSceneScriptSchemaIsLenient(t *testing.T) {
	schema := SceneScriptSchema()
	if len(schema.Required) != 0 {
		t.Errorf("scene script schema declares required fields %v, want none", schema.Required)
	}
	scenes, ok := schema.Properties["scenes"]
	if !ok || scenes.Items == nil {
		t.Fatal("scenes array schema missing")
	}
	for _, field := range []string{"scene_id", "description", "vo_script"} {
		if _, ok := scenes.Items.Properties[field]; !ok {
			t.Errorf("scene item schema missing %q", field)
		}
	}
}

func respWithParts(parts []*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func TestExtractImageDataURL(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4E, 0x47}
	resp := respWithParts([]*genai.Part{
		genai.NewPartFromText("here is your image"),
		{InlineData: &genai.Blob{MIMEType: "image/png", Data: data}},
	})

	url := ExtractImageDataURL(resp)
	wantPrefix := "data:image/png;base64,"
	if !strings.HasPrefix(url, wantPrefix) {
		t.Fatalf("data URL = %q, want prefix %q", url, wantPrefix)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, wantPrefix))
	if err != nil || string(decoded) != string(data) {
		t.Errorf("data URL payload does not round-trip: %v", err)
	}
}

func TestExtractImageDataURLAbsent(t *testing.T) {
	resp := respWithParts([]*genai.Part{genai.NewPartFromText("no image, sorry")})
	if url := ExtractImageDataURL(resp); url != "" {
		t.Errorf("absence must be empty string, got %q", url)
	}
	if url := ExtractImageDataURL(nil); url != "" {
		t.Errorf("nil response must yield absence, got %q", url)
	}
}

func TestExtractAudio(t *testing.T) {
	pcm := []byte{1, 2, 3, 4}
	resp := respWithParts([]*genai.Part{
		{InlineData: &genai.Blob{MIMEType: "audio/L16;codec=pcm;rate=24000", Data: pcm}},
	})

	audio, mimeType := ExtractAudio(resp)
	if string(audio) != string(pcm) {
		t.Errorf("audio bytes = %v", audio)
	}
	if !strings.HasPrefix(mimeType, "audio/") {
		t.Errorf("mime = %q", mimeType)
	}
}

func TestExtractAudioAbsent(t *testing.T) {
	resp := respWithParts([]*genai.Part{genai.NewPartFromText("cannot synthesize")})
	if audio, _ := ExtractAudio(resp); audio != nil {
		t.Errorf("absence must be nil, got %d bytes", len(audio))
	}
	if audio, _ := ExtractAudio(&genai.GenerateContentResponse{}); audio != nil {
		t.Error("empty candidates must yield absence")
	}
}
