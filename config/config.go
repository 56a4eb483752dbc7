package config

import (
	"os"
	"strconv"
	"time"
)

// LLMConfig controls the optional Hugging Face optimization path. An empty
// Token disables the path entirely; the deterministic rule-based pipeline is
// always available.
type LLMConfig struct {
	Token      string
	Model      string
	Endpoint   string
	Timeout    time.Duration
	MaxRetries int
}

type AppConfig struct {
	Port        string
	Environment string
	LLM         LLMConfig
}

func GetLLMConfig() LLMConfig {
	timeoutSec, err := strconv.Atoi(getEnv("LLM_TIMEOUT_SECONDS", "25"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 25
	}

	return LLMConfig{
		Token:      getEnv("HF_TOKEN", ""),
		Model:      getEnv("HF_MODEL", "meta-llama/Llama-3.1-8B-Instruct"),
		Endpoint:   getEnv("HF_ENDPOINT", "https://router.huggingface.co/v1/chat/completions"),
		Timeout:    time.Duration(timeoutSec) * time.Second,
		MaxRetries: 2,
	}
}

func GetAppConfig() AppConfig {
	return AppConfig{
		Port:        getEnv("PORT", "8081"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LLM:         GetLLMConfig(),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
