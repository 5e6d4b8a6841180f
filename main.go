package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"muse-studio-server/modules/analyze"
	"muse-studio-server/modules/common/config"
	"muse-studio-server/modules/common/database"
	"muse-studio-server/modules/common/hub"
	redisutil "muse-studio-server/modules/common/redis"
	"muse-studio-server/modules/common/storage"
	generateimage "muse-studio-server/modules/generate-image"
	scenescript "muse-studio-server/modules/scene-script"
	"muse-studio-server/modules/speech"
)

// CORS 헤더 추가
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "muse-studio-server",
	})
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// 공용 클라이언트 초기화
	dbClient := database.NewClient()
	if dbClient == nil {
		log.Fatal("❌ Failed to initialize Database client")
	}
	storageClient := storage.NewClient(dbClient)

	rdb := redisutil.Connect(cfg)
	if rdb == nil {
		log.Fatal("❌ Failed to connect to Redis")
	}

	// Job 진행 브로드캐스트 허브
	progressHub := hub.New()

	// Redis Queue Worker 시작 (백그라운드)
	go generateimage.StartWorker(progressHub)

	// 모듈 초기화
	analyzeHandler := analyze.NewHandler(analyze.NewService(storageClient))
	scriptHandler := scenescript.NewHandler(scenescript.NewService(storageClient))
	speechHandler := speech.NewHandler(speech.NewService())
	imageHandler := generateimage.NewHandler(generateimage.NewService(dbClient, storageClient, rdb))

	// 라우터 설정
	r := mux.NewRouter()
	r.Use(enableCORS)

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ws", progressHub.HandleWebSocket)

	r.HandleFunc("/api/analyze", analyzeHandler.HandleAnalyze).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/scene-script", scriptHandler.HandleScript).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/speech", speechHandler.HandleSpeech).Methods("POST", "OPTIONS")
	imageHandler.RegisterRoutes(r)

	log.Printf("🚀 Muse Studio Server starting on port %s", cfg.Port)
	log.Printf("📡 WebSocket endpoint: ws://localhost:%s/ws?job=<jobId>", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
