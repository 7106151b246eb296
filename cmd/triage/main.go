package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/xaenox/chat-triage/internal/api"
	"github.com/xaenox/chat-triage/internal/classifier"
	"github.com/xaenox/chat-triage/pkg/config"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	if cfg.Logging.Development {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger = logger.With(zap.String("run_id", uuid.New().String()))

	// A positional argument overrides the configured input path
	inputPath := cfg.Input.Path
	if len(os.Args) > 1 {
		inputPath = os.Args[1]
	}

	input, err := readInput(inputPath)
	if err != nil {
		logger.Fatal("Failed to read input", zap.Error(err), zap.String("path", inputPath))
	}

	// Initialize classifier and the serialization boundary
	clf := classifier.NewKeywordClassifier(cfg.Classifier.SampleLimit, logger)
	svc := api.NewService(clf)

	output, err := svc.ClassifyJSON(input)
	if err != nil {
		logger.Fatal("Failed to classify messages", zap.Error(err))
	}

	logger.Info("Classified messages", zap.Int("input_bytes", len(input)))
	fmt.Println(string(output))
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
