package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	BioRxiv BioRxivConfig `yaml:"biorxiv"`
	LLM     LLMConfig     `yaml:"llm"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// BioRxivConfig 는 bioRxiv details API 호출에 대한 설정이다.
type BioRxivConfig struct {
	// BaseURL 은 details API 의 베이스 URL 이다. (예: https://api.biorxiv.org/details)
	BaseURL string `yaml:"base_url"`

	// Server 는 조회 대상 프리프린트 서버이다. (biorxiv 또는 medrxiv)
	Server string `yaml:"server"`

	// MaxPapers 는 한 달 조회 시 페이지네이션으로 누적할 수 있는 최대 레코드 수이다.
	// 서버가 total 을 잘못 보고하더라도 무한 루프를 막기 위한 안전장치로,
	// 0 이하면 기본값 2000 을 사용한다.
	MaxPapers int `yaml:"max_papers"`

	// RequestTimeoutSeconds 는 페이지 요청 1회에 대한 타임아웃(초)이다.
	// 0 이하면 httpclient 기본값을 사용한다.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

// LLMConfig selects the generative-text provider used for abstract summaries.
// API keys are never stored here; they come from GEMINI_API_KEY / OPENAI_API_KEY.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "google" or "openai"
	ModelName string `yaml:"model_name"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
