package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	RedTrack    RedTrack    `mapstructure:",squash"`
	Admin       Admin       `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	SourceCache SourceCache `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type RedTrack struct {
	BaseURL string `mapstructure:"redtrack_base_url"`
	APIKey  string `mapstructure:"redtrack_api_key"`

	// SourceID é a fonte de tráfego usada para resolver apelidos de
	// sub-parâmetro. A operação trabalha com uma única fonte.
	SourceID string `mapstructure:"redtrack_source_id"`
}

// Admin é o par de credenciais do operador. ADMIN_PASSWORD aceita tanto a
// senha em texto quanto um hash bcrypt (prefixo $2).
type Admin struct {
	Username string `mapstructure:"admin_username"`
	Password string `mapstructure:"admin_password"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type SourceCache struct {
	TTL time.Duration `mapstructure:"source_cache_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("REDTRACK_BASE_URL", "https://api.redtrack.io")
	viper.SetDefault("REDTRACK_API_KEY", "")
	viper.SetDefault("REDTRACK_SOURCE_ID", "65c405dd0de7ed0001f5d3b8")

	viper.SetDefault("ADMIN_USERNAME", "")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// A fonte de tráfego muda raramente; 5 minutos cobrem uma sessão de
	// lançamento de custos sem rebuscar a cada consulta de subs.
	viper.SetDefault("SOURCE_CACHE_TTL", "5m")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.RedTrack.APIKey == "" {
		logrus.Warn("REDTRACK_API_KEY não configurada; rotas do RedTrack responderão 500")
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
