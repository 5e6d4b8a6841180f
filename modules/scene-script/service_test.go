package scenescript

import (
	"testing"

	"muse-studio-server/modules/common/gemini"
)

func TestResolveSceneCount(t *testing.T) {
	cases := []struct {
		requested int
		want      int
	}{
		{0, defaultSceneCount},
		{-3, defaultSceneCount},
		{1, 1},
		{3, 3},
		{10, 10},
	}

	for _, tc := range cases {
		if got := resolveSceneCount(tc.requested); got != tc.want {
			t.Errorf("resolveSceneCount(%d) = %d, want %d", tc.requested, got, tc.want)
		}
	}
}

func TestCapScenesTruncatesOverflow(t *testing.T) {
	// 모델이 상한을 무시하고 6개를 반환한 경우
	raw := `{
		"strategy": "teaser",
		"hook": "wait for it",
		"scenes": [
			{"scene_id": 1, "description": "open", "vo_script": "a"},
			{"scene_id": 2, "description": "build", "vo_script": "b"},
			{"scene_id": 3, "description": "turn", "vo_script": "c"},
			{"scene_id": 4, "description": "reveal", "vo_script": "d"},
			{"scene_id": 5, "description": "extra", "vo_script": "e"},
			{"scene_id": 6, "description": "extra", "vo_script": "f"}
		]
	}`

	script := capScenes(gemini.ParseSceneScript(raw), 3)

	if len(script.Scenes) != 3 {
		t.Fatalf("got %d scenes, want 3", len(script.Scenes))
	}
	if script.Scenes[2].SceneID != 3 {
		t.Errorf("truncation dropped the wrong scenes, last scene_id = %d", script.Scenes[2].SceneID)
	}
	if script.Hook != "wait for it" {
		t.Errorf("hook lost during truncation: %q", script.Hook)
	}
}

func TestCapScenesKeepsUnderCap(t *testing.T) {
	raw := `{"scenes": [{"scene_id": 1, "description": "only one", "vo_script": "a"}]}`

	script := capScenes(gemini.ParseSceneScript(raw), 4)

	if len(script.Scenes) != 1 {
		t.Errorf("got %d scenes, want 1", len(script.Scenes))
	}
}

func TestCapScenesEmptyScript(t *testing.T) {
	// 파싱 실패 → 빈 스크립트, 잘라낼 것도 없음
	script := capScenes(gemini.ParseSceneScript("not json at all"), 4)

	if len(script.Scenes) != 0 {
		t.Errorf("got %d scenes from garbage, want 0", len(script.Scenes))
	}
}
