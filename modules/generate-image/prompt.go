package generateimage

// generationTrailer - 신규 생성의 마무리 지시
const generationTrailer = `[TASK]
Generate one polished content image following every rule above. Keep the subject identity faithful to the references at the stated match strengths.`

// editTrailer - 기존 이미지 수정의 마무리 지시
// 원본 구도/크기를 유지해야 하므로 변경 범위를 지시 내용으로 한정
const editTrailer = `[TASK]
Edit the attached image. Apply only the requested changes and preserve everything else: composition, framing, subject placement, and image geometry must stay as in the original.`
