// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Game     GameConfig    `yaml:"game"`
	DB       DBConfig      `yaml:"db"`
	Redis    RedisConfig   `yaml:"redis"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// GameConfig содержит игровые политики: окно жизни run-токена,
// физиологические потолки метрик и параметры пересчёта счёта.
// Все значения — эмпирически подобранные константы политики,
// поэтому намеренно вынесены в конфигурацию, а не зашиты в код.
type GameConfig struct {
	// TokenTTL — фиксированное окно действия run-токена с момента выдачи.
	TokenTTL time.Duration `yaml:"token_ttl" env:"GAME_TOKEN_TTL" env-default:"30s"`
	// MinPlayDuration — минимальное время между выдачей и погашением токена.
	MinPlayDuration time.Duration `yaml:"min_play_duration" env:"GAME_MIN_PLAY_DURATION" env-default:"2s"`
	// MaxLPS — жёсткий потолок скорости набора (букв/сек).
	MaxLPS float64 `yaml:"max_lps" env:"GAME_MAX_LPS" env-default:"60"`
	// MsPerLetterTolerance — допустимое расхождение ms_per_letter и 1000/lps, мс.
	MsPerLetterTolerance float64 `yaml:"ms_per_letter_tolerance" env:"GAME_MS_PER_LETTER_TOLERANCE" env-default:"5"`
	// MaxScore — верхняя граница пересчитанного счёта.
	MaxScore float64 `yaml:"max_score" env:"GAME_MAX_SCORE" env-default:"20"`
	// Mode30Multiplier — множитель нормализации 30-словного режима.
	Mode30Multiplier float64 `yaml:"mode30_multiplier" env:"GAME_MODE30_MULTIPLIER" env-default:"1.22"`

	// Окна допустимой длительности раунда по режимам, сек.
	Mode15TimeMin float64 `yaml:"mode15_time_min" env:"GAME_MODE15_TIME_MIN" env-default:"1.5"`
	Mode15TimeMax float64 `yaml:"mode15_time_max" env:"GAME_MODE15_TIME_MAX" env-default:"120"`
	Mode30TimeMin float64 `yaml:"mode30_time_min" env:"GAME_MODE30_TIME_MIN" env-default:"3"`
	Mode30TimeMax float64 `yaml:"mode30_time_max" env:"GAME_MODE30_TIME_MAX" env-default:"300"`

	// DefaultLeaderboardLimit/MaxLeaderboardLimit — размер страницы выдачи лидерборда.
	DefaultLeaderboardLimit int `yaml:"default_leaderboard_limit" env:"GAME_DEFAULT_LEADERBOARD_LIMIT" env-default:"50"`
	MaxLeaderboardLimit     int `yaml:"max_leaderboard_limit" env:"GAME_MAX_LEADERBOARD_LIMIT" env-default:"100"`

	// LeaderboardCacheTTL — TTL кэша выдачи лидерборда (0 — кэш не используется).
	LeaderboardCacheTTL time.Duration `yaml:"leaderboard_cache_ttl" env:"GAME_LEADERBOARD_CACHE_TTL" env-default:"5s"`

	// SessionJanitorPeriod — период фоновой очистки просроченных run-сессий.
	SessionJanitorPeriod time.Duration `yaml:"session_janitor_period" env:"GAME_SESSION_JANITOR_PERIOD" env-default:"10m"`
}

// TimeWindow возвращает допустимое окно длительности раунда для режима.
// ok == false — режим не поддерживается.
func (g GameConfig) TimeWindow(mode int) (min, max float64, ok bool) {
	switch mode {
	case 15:
		return g.Mode15TimeMin, g.Mode15TimeMax, true
	case 30:
		return g.Mode30TimeMin, g.Mode30TimeMax, true
	default:
		return 0, 0, false
	}
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
}

// RedisConfig — настройки Redis-кэша лидерборда.
// Пустой URL означает, что кэш отключён.
type RedisConfig struct {
	RedisURL string `yaml:"redis_url" env:"REDIS_URL"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// ВАЖНО: после чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
