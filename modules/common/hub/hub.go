package hub

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 개발용 - 모든 origin 허용
		return true
	},
}

// ProgressEvent - Job 진행 이벤트 (구독 중인 클라이언트에게 push)
type ProgressEvent struct {
	Type         string `json:"type"` // "job_update"
	JobID        string `json:"job_id"`
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	AttachID     int    `json:"attach_id,omitempty"`
	FilePath     string `json:"file_path,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Client - 구독 중인 WebSocket 연결
type Client struct {
	conn  *websocket.Conn
	jobID string
	send  chan []byte
}

// JobChannel - Job 하나를 구독하는 클라이언트 집합
type JobChannel struct {
	jobID        string
	clients      map[*Client]bool
	mutex        sync.RWMutex
	lastActivity time.Time
}

// Hub - Job 진행 브로드캐스트 허브
type Hub struct {
	channels map[string]*JobChannel
	mutex    sync.RWMutex
}

func New() *Hub {
	h := &Hub{
		channels: make(map[string]*JobChannel),
	}
	h.startCleanupRoutine()
	return h
}

// getOrCreateChannel - Job 채널 가져오기 또는 생성
func (h *Hub) getOrCreateChannel(jobID string) *JobChannel {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	channel, exists := h.channels[jobID]
	if !exists {
		channel = &JobChannel{
			jobID:        jobID,
			clients:      make(map[*Client]bool),
			lastActivity: time.Now(),
		}
		h.channels[jobID] = channel
		log.Printf("✅ Created progress channel for job: %s", jobID)
	}

	channel.lastActivity = time.Now()
	return channel
}

// HandleWebSocket - GET /ws?job=<jobId>
// Job 진행 상황 구독용 WebSocket 연결
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("job")
	if jobID == "" {
		http.Error(w, "job parameter is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		conn:  conn,
		jobID: jobID,
		send:  make(chan []byte, 64),
	}

	channel := h.getOrCreateChannel(jobID)
	channel.addClient(client)

	log.Printf("👤 Client subscribed to job %s", jobID)

	go client.writePump()
	go client.readPump(channel)
}

// Broadcast - Job을 구독 중인 모든 클라이언트에게 이벤트 전송
// 구독자가 없으면 조용히 무시 (워커는 구독 여부와 무관하게 진행)
func (h *Hub) Broadcast(jobID string, event ProgressEvent) {
	h.mutex.RLock()
	channel, exists := h.channels[jobID]
	h.mutex.RUnlock()

	if !exists {
		return
	}

	event.Type = "job_update"
	event.JobID = jobID

	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling progress event: %v", err)
		return
	}

	channel.mutex.Lock()
	defer channel.mutex.Unlock()

	channel.lastActivity = time.Now()
	for client := range channel.clients {
		select {
		case client.send <- messageBytes:
		default:
			close(client.send)
			delete(channel.clients, client)
		}
	}
}

// addClient - 채널에 클라이언트 추가
func (c *JobChannel) addClient(client *Client) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.clients[client] = true
	c.lastActivity = time.Now()
}

// removeClient - 채널에서 클라이언트 제거
func (c *JobChannel) removeClient(client *Client) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, exists := c.clients[client]; exists {
		close(client.send)
		delete(c.clients, client)
		log.Printf("👋 Client unsubscribed from job %s (remaining: %d)", c.jobID, len(c.clients))
	}
}

// readPump - 연결 종료 감지용 (구독자는 메시지를 보내지 않음)
func (c *Client) readPump(channel *JobChannel) {
	defer func() {
		channel.removeClient(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump - 클라이언트로 이벤트 쓰기
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// startCleanupRoutine - 구독자 없는 오래된 채널 정리
func (h *Hub) startCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			h.cleanupIdleChannels()
		}
	}()
}

func (h *Hub) cleanupIdleChannels() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	now := time.Now()
	cleaned := 0
	for jobID, channel := range h.channels {
		channel.mutex.RLock()
		idle := len(channel.clients) == 0 && now.Sub(channel.lastActivity) > 30*time.Minute
		channel.mutex.RUnlock()

		if idle {
			delete(h.channels, jobID)
			cleaned++
		}
	}

	if cleaned > 0 {
		log.Printf("🧹 Cleaned up %d idle progress channels", cleaned)
	}
}
