package storage

import (
	"fmt"
	"log"

	"muse-studio-server/modules/common/gemini"
	"muse-studio-server/modules/common/model"
	"muse-studio-server/modules/common/utils"
)

// ResolveReferences - 요청의 레퍼런스 입력 → Gemini에 보낼 이미지 바이너리
// data URL이 있으면 그대로 디코딩, 없으면 attach ID로 Storage에서 다운로드.
// 입력 순서가 그대로 유지됨 (역할 라벨과 이미지의 짝이 순서에 의존)
func (c *Client) ResolveReferences(refs []model.ReferenceInput) ([]gemini.ImageReference, error) {
	resolved := make([]gemini.ImageReference, 0, len(refs))

	for i, ref := range refs {
		switch {
		case ref.DataURL != "":
			data, mimeType, err := utils.DecodeDataURL(ref.DataURL)
			if err != nil {
				return nil, fmt.Errorf("reference %d: %w", i, err)
			}
			resolved = append(resolved, gemini.ImageReference{
				Data:     data,
				MIMEType: mimeType,
				Role:     ref.Role,
			})

		case ref.AttachID > 0:
			data, mimeType, err := c.DownloadReference(ref.AttachID)
			if err != nil {
				return nil, fmt.Errorf("reference %d (attach %d): %w", i, ref.AttachID, err)
			}
			resolved = append(resolved, gemini.ImageReference{
				Data:     data,
				MIMEType: mimeType,
				Role:     ref.Role,
			})

		default:
			return nil, fmt.Errorf("reference %d: neither data_url nor attach_id provided", i)
		}
	}

	log.Printf("📎 Resolved %d reference images", len(resolved))
	return resolved, nil
}
