package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Datasets      Datasets      `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Datasets aponta para os quatro arquivos de origem do dashboard
type Datasets struct {
	Dir          string `mapstructure:"datasets_dir"`
	FacebookFile string `mapstructure:"datasets_facebook_file"`
	GoogleFile   string `mapstructure:"datasets_google_file"`
	TikTokFile   string `mapstructure:"datasets_tiktok_file"`
	BusinessFile string `mapstructure:"datasets_business_file"`
}

// DatasetReload controla o recarregamento agendado dos arquivos de origem
type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

// FacebookPath retorna o caminho completo do arquivo do Facebook
func (d Datasets) FacebookPath() string {
	return filepath.Join(d.Dir, d.FacebookFile)
}

// GooglePath retorna o caminho completo do arquivo do Google
func (d Datasets) GooglePath() string {
	return filepath.Join(d.Dir, d.GoogleFile)
}

// TikTokPath retorna o caminho completo do arquivo do TikTok
func (d Datasets) TikTokPath() string {
	return filepath.Join(d.Dir, d.TikTokFile)
}

// BusinessPath retorna o caminho completo do arquivo de métricas do negócio
func (d Datasets) BusinessPath() string {
	return filepath.Join(d.Dir, d.BusinessFile)
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASETS_DIR", "data")
	viper.SetDefault("DATASETS_FACEBOOK_FILE", "Facebook.csv")
	viper.SetDefault("DATASETS_GOOGLE_FILE", "Google.csv")
	viper.SetDefault("DATASETS_TIKTOK_FILE", "TikTok.csv")
	viper.SetDefault("DATASETS_BUSINESS_FILE", "Business.csv")

	// Defaults para recarregamento de datasets
	viper.SetDefault("DATASET_RELOAD_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)    // Recarregamento apenas manual por padrão

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
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
