package app

import (
	"github.com/joho/godotenv"

	"github.com/livesitter/livesitter-backend/internal/pkg/envutil"
	"github.com/livesitter/livesitter-backend/internal/pkg/logger"
)

type Config struct {
	Env         string
	SecretKey   string
	MongoURI    string
	MongoDBName string
	Port        int
	CORSOrigins []string
}

// LoadConfig reads configuration from the environment, after loading a
// local .env file when one exists. Every variable has a default.
func LoadConfig(log *logger.Logger) Config {
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded .env file")
	}

	return Config{
		Env:         envutil.Get("APP_ENV", "development"),
		SecretKey:   envutil.Get("SECRET_KEY", "change-me-in-production"),
		MongoURI:    envutil.Get("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: envutil.Get("MONGO_DBNAME", "livesitter_db"),
		Port:        envutil.GetInt("PORT", 5000),
		CORSOrigins: envutil.GetList("CORS_ORIGINS", []string{"http://localhost:3000"}),
	}
}
