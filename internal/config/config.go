// config реализует конфигурацию miniblog-движка: загрузка из YAML/ENV с
// предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Feed     FeedConfig     `yaml:"feed"`
	Cache    CacheConfig    `yaml:"cache"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// UpstreamConfig — базовые URL удалённых сервисов (blog/community).
type UpstreamConfig struct {
	BlogURL      string `yaml:"blog_url" env:"BLOG_URL" env-required:"true"`
	CommunityURL string `yaml:"community_url" env:"COMMUNITY_URL" env-required:"true"`
}

// FeedConfig — параметры агрегатора ленты.
type FeedConfig struct {
	// Размер страницы одного раздела за цикл подгрузки.
	PageSize int `yaml:"page_size" env:"FEED_PAGE_SIZE" env-default:"10"`
	// Максимум одновременных обогащений (лайки/комментарии/теги) за цикл.
	EnrichConcurrency int `yaml:"enrich_concurrency" env:"FEED_ENRICH_CONCURRENCY" env-default:"6"`
}

// CacheConfig — опциональный Redis-кэш счётчиков обогащения.
// Пустой Addr полностью отключает кэш.
type CacheConfig struct {
	Addr string        `yaml:"addr" env:"CACHE_ADDR" env-default:""`
	TTL  time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"30s"`
}

// TimeoutConfig — сервисные таймауты.
type TimeoutConfig struct {
	// Общий дедлайн обработки входящего запроса.
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"10s"`
	// Таймаут одного вызова к апстриму.
	Upstream time.Duration `yaml:"upstream" env:"UPSTREAM_TIMEOUT" env-default:"5s"`
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
// После чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

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

	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	for name, raw := range map[string]string{
		"upstream.blog_url":      c.Upstream.BlogURL,
		"upstream.community_url": c.Upstream.CommunityURL,
	} {
		if raw == "" {
			return fmt.Errorf("%s is required", name)
		}

		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL", name)
		}
	}

	if c.Feed.PageSize <= 0 {
		return fmt.Errorf("feed.page_size must be > 0")
	}

	if c.Feed.PageSize > 100 {
		return fmt.Errorf("feed.page_size is too large (<= 100)")
	}

	if c.Feed.EnrichConcurrency <= 0 {
		return fmt.Errorf("feed.enrich_concurrency must be > 0")
	}

	if c.Cache.Addr != "" && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when cache is enabled")
	}

	if c.Timeouts.Service <= 0 {
		return fmt.Errorf("timeouts.service must be > 0")
	}

	if c.Timeouts.Upstream <= 0 {
		return fmt.Errorf("timeouts.upstream must be > 0")
	}

	return nil
}
