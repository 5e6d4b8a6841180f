package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"muse-studio-server/modules/common/config"
	"muse-studio-server/modules/common/database"
)

type Client struct {
	dbClient *database.Client
}

// NewClient - Storage 클라이언트 생성
func NewClient(dbClient *database.Client) *Client {
	return &Client{
		dbClient: dbClient,
	}
}

// DownloadReference - attach ID로 Supabase Storage에서 레퍼런스 이미지 다운로드
func (c *Client) DownloadReference(attachID int) ([]byte, string, error) {
	cfg := config.GetConfig()

	// 1. muse_attach에서 파일 경로 조회
	attach, err := c.dbClient.FetchAttachInfo(attachID)
	if err != nil {
		return nil, "", err
	}

	// 2. attach_file_path 확인 (없으면 attach_directory 사용)
	var filePath string
	if attach.AttachFilePath != nil && *attach.AttachFilePath != "" {
		filePath = *attach.AttachFilePath
	} else if attach.AttachDirectory != nil && *attach.AttachDirectory != "" {
		filePath = *attach.AttachDirectory
	} else {
		return nil, "", fmt.Errorf("no file path found for attach_id: %d", attachID)
	}

	fullURL := cfg.SupabaseStorageBaseURL + filePath
	log.Printf("📥 Downloading reference from: %s", fullURL)

	httpResp, err := http.Get(fullURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download reference: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		return nil, "", fmt.Errorf("failed to download reference: status %d, body: %s", httpResp.StatusCode, string(body))
	}

	imageData, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read reference data: %w", err)
	}

	mimeType := httpResp.Header.Get("Content-Type")
	if mimeType == "" && attach.AttachFileType != nil {
		mimeType = *attach.AttachFileType
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	log.Printf("✅ Reference downloaded: %d bytes (%s)", len(imageData), mimeType)
	return imageData, mimeType, nil
}

// UploadImage - Supabase Storage에 결과 이미지 업로드 (WebP 변환 포함)
func (c *Client) UploadImage(ctx context.Context, imageData []byte, userID string, convertToWebP func([]byte, float32) ([]byte, error)) (string, int64, error) {
	cfg := config.GetConfig()

	// PNG → WebP (quality: 90)
	webpData, err := convertToWebP(imageData, 90.0)
	if err != nil {
		return "", 0, fmt.Errorf("failed to convert PNG to WebP: %w", err)
	}

	// 파일명 생성
	timestamp := time.Now().UnixNano() / int64(time.Millisecond)
	randomID := rand.Intn(999999)
	fileName := fmt.Sprintf("muse_%d_%d.webp", timestamp, randomID)

	if userID == "" {
		userID = "anonymous"
	}
	filePath := fmt.Sprintf("studio-outputs/user-%s/%s", userID, fileName)

	log.Printf("📤 Uploading WebP image to storage: %s", filePath)

	uploadURL := fmt.Sprintf("%s/storage/v1/object/attachments/%s",
		cfg.SupabaseURL, filePath)

	req, err := http.NewRequestWithContext(ctx, "POST", uploadURL, bytes.NewReader(webpData))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create upload request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+cfg.SupabaseServiceKey)
	req.Header.Set("Content-Type", "image/webp")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	webpSize := int64(len(webpData))
	log.Printf("✅ WebP image uploaded: %s (%d bytes)", filePath, webpSize)
	return filePath, webpSize, nil
}
