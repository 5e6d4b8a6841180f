package analyze

// analysisTrailer - 분석 능력의 마무리 지시
// 레퍼런스를 관찰하고 구조화 JSON으로만 답하게 강제
const analysisTrailer = `[TASK]
Study the attached reference images carefully. Produce a subject analysis as a single JSON object:
- identity: who or what the subject is, in one dense paragraph
- style_report: the visual style you observe across the references
- consistency_guidelines: concrete rules to keep this subject consistent in future generations
- composition_plan: a concrete composition plan for the next content piece
- caption: a ready-to-post caption
- hashtags: a list of hashtags
- vo_script: a short voice-over script
- conversion_note: only when this is ads content, one note on conversion optimization
Respond with the JSON object only.`
