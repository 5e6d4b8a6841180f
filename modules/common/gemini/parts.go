package gemini

import (
	"fmt"

	"google.golang.org/genai"
)

// ImageReference - 참조 이미지 (바이너리 + MIME + 선택적 역할 라벨)
type ImageReference struct {
	Data     []byte
	MIMEType string
	Role     string // "character", "product", "background" 등. 비어있으면 라벨 생략
}

// BuildParts - 참조 이미지 시퀀스 → Gemini Part 배열
// 역할 라벨이 있으면 이미지 바로 앞에 텍스트 파트로 삽입 (모델이 어떤
// 이미지가 어떤 역할인지 구분할 수 있도록). 입력 순서는 그대로 유지됨 -
// 멀티 레퍼런스 구분은 순서에 민감함.
func BuildParts(refs []ImageReference) []*genai.Part {
	parts := make([]*genai.Part, 0, len(refs)*2)

	for _, ref := range refs {
		if ref.Role != "" {
			parts = append(parts, genai.NewPartFromText(fmt.Sprintf("[Reference: %s]", ref.Role)))
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: ref.MIMEType,
				Data:     ref.Data,
			},
		})
	}

	return parts
}
