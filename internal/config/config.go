package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AppEnv         string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	JWTExpireHours int
	FrontendURL    string

	Ranking RankingConfig
}

// RankingConfig holds the tunables of the personalization core. The decay
// rates are intentionally independent of each other; see DESIGN.md.
type RankingConfig struct {
	InterestDecayLambda float64 // per-day decay while accumulating interest
	RecencyDecayLambda  float64 // per-day decay of the recency score term
	ExplicitTagBoost    float64
	ImplicitTagBoost    float64
	MMRLambda           float64 // higher favors relevance, lower favors diversity
	PoolFactor          int     // candidate pool = N * PoolFactor
	FeedSize            int
	TrendingSize        int
	RecomputeWorkers    int
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "development"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "hooked_db"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		JWTExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),

		Ranking: RankingConfig{
			InterestDecayLambda: getEnvFloat("INTEREST_DECAY_LAMBDA", 0.1),
			RecencyDecayLambda:  getEnvFloat("RECENCY_DECAY_LAMBDA", 1.0/7.0),
			ExplicitTagBoost:    getEnvFloat("EXPLICIT_TAG_BOOST", 5.0),
			ImplicitTagBoost:    getEnvFloat("IMPLICIT_TAG_BOOST", 2.5),
			MMRLambda:           getEnvFloat("MMR_LAMBDA", 0.7),
			PoolFactor:          getEnvInt("CANDIDATE_POOL_FACTOR", 3),
			FeedSize:            getEnvInt("FEED_SIZE", 10),
			TrendingSize:        getEnvInt("TRENDING_SIZE", 6),
			RecomputeWorkers:    getEnvInt("RECOMPUTE_WORKERS", 8),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
