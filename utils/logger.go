package utils

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// Logger est le logger global de l'application (même rôle que config.DB :
// initialisé une fois au démarrage, utilisé partout).
var Logger *zap.SugaredLogger = zap.NewNop().Sugar()

func InitLogger() {
	var cfg zap.Config
	switch os.Getenv("APP_ENV") {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatal("Impossible d'initialiser le logger:", err)
	}
	Logger = zapLogger.Sugar()
}
