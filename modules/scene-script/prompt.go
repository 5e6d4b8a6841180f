package scenescript

import "fmt"

// scriptTrailer - 씬 스크립트 능력의 마무리 지시 (씬 개수 포함)
func scriptTrailer(sceneCount int, productBrief string) string {
	trailer := fmt.Sprintf(`[TASK]
Write a short-form production script as a single JSON object:
- strategy: the content strategy in one paragraph
- hook: the first-3-seconds hook
- storyline_options: alternative storyline directions
- scenes: at most %d scenes, each with scene_id, description, and vo_script
- caption: a ready-to-post caption
- hashtags: a list of hashtags
Respond with the JSON object only.`, sceneCount)

	if productBrief != "" {
		trailer += fmt.Sprintf("\n\n[SUBJECT]\n%s", productBrief)
	}
	return trailer
}
