package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server holds the settings every service shares.
type Server struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DatabasePath    string
	CORSOrigins     []string
}

type Auth struct {
	Server

	SecretKey            string
	TokenType            string
	AccessTokenTTL       time.Duration
	RefreshTokenTTL      time.Duration
	TokenCleanupInterval time.Duration

	// Profile images
	MaxImageSize int64
	UploadDir    string
}

type Tasks struct {
	Server

	AuthServiceURL     string // e.g. "http://127.0.0.1:8001"
	SolutionServiceURL string // e.g. "http://127.0.0.1:8003"
	UpstreamTimeout    time.Duration
}

type Solutions struct {
	Server

	AuthServiceURL  string
	TaskServiceURL  string
	UpstreamTimeout time.Duration

	// Attempt images
	MaxImageSize int64
	UploadDir    string

	NotifyPollInterval time.Duration
	EnrichWorkers      int
}

type Answers struct {
	Server

	AuthServiceURL  string
	TaskServiceURL  string
	UpstreamTimeout time.Duration
}

func loadServer(defaultAddr, defaultDB string) Server {
	// Load .env file if it exists
	_ = godotenv.Load()
	return Server{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", defaultAddr),
		ShutdownTimeout: getDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		DatabasePath:    getenvDefault("DATABASE_PATH", defaultDB),
		CORSOrigins:     getListDefault("CORS_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
	}
}

func LoadAuth() *Auth {
	return &Auth{
		Server:               loadServer(":8001", "auth.db"),
		SecretKey:            mustGetenv("SECRET_KEY"),
		TokenType:            getenvDefault("TOKEN_TYPE", "Bearer"),
		AccessTokenTTL:       time.Duration(getIntDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60)) * time.Minute,
		RefreshTokenTTL:      time.Duration(getIntDefault("REFRESH_TOKEN_EXPIRE_DAYS", 7)) * 24 * time.Hour,
		TokenCleanupInterval: getDurationDefault("TOKEN_CLEANUP_INTERVAL", 24*time.Hour),
		MaxImageSize:         int64(getIntDefault("MAX_IMAGE_SIZE", 5*1024*1024)),
		UploadDir:            getenvDefault("UPLOAD_DIR", "public/user/images"),
	}
}

func LoadTasks() *Tasks {
	return &Tasks{
		Server:             loadServer(":8002", "tasks.db"),
		AuthServiceURL:     getenvDefault("AUTH_SERVICE_URL", "http://127.0.0.1:8001"),
		SolutionServiceURL: getenvDefault("SOLUTION_SERVICE_URL", "http://127.0.0.1:8003"),
		UpstreamTimeout:    getDurationDefault("UPSTREAM_TIMEOUT", 10*time.Second),
	}
}

func LoadSolutions() *Solutions {
	return &Solutions{
		Server:             loadServer(":8003", "solutions.db"),
		AuthServiceURL:     getenvDefault("AUTH_SERVICE_URL", "http://127.0.0.1:8001"),
		TaskServiceURL:     getenvDefault("TASK_SERVICE_URL", "http://127.0.0.1:8002"),
		UpstreamTimeout:    getDurationDefault("UPSTREAM_TIMEOUT", 10*time.Second),
		MaxImageSize:       int64(getIntDefault("MAX_IMAGE_SIZE", 10*1024*1024)),
		UploadDir:          getenvDefault("UPLOAD_DIR", "public/attempts/images"),
		NotifyPollInterval: getDurationDefault("NOTIFY_POLL_INTERVAL", 10*time.Second),
		EnrichWorkers:      getIntDefault("ENRICH_WORKERS", 4),
	}
}

func LoadAnswers() *Answers {
	return &Answers{
		Server:          loadServer(":8004", "answers.db"),
		AuthServiceURL:  getenvDefault("AUTH_SERVICE_URL", "http://127.0.0.1:8001"),
		TaskServiceURL:  getenvDefault("TASK_SERVICE_URL", "http://127.0.0.1:8002"),
		UpstreamTimeout: getDurationDefault("UPSTREAM_TIMEOUT", 10*time.Second),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getIntDefault(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Fatalf("config: %s=%q is not a valid non-negative integer", k, v)
	}
	return n
}

func getListDefault(k string, fallback []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
