package speech

// SpeechRequest - 음성 합성 요청
type SpeechRequest struct {
	Text string `json:"text"` // 읽을 스크립트 (vo_script 등)
}

// SpeechResponse - 음성 합성 응답
type SpeechResponse struct {
	Success      bool   `json:"success"`
	AudioBase64  string `json:"audio_base64,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
