package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/rs/zerolog"
)

const (
	defaultApiTimeout        = time.Second * 10
	defaultForYouTopK        = 70
	defaultBasketTopK        = 35
	defaultProductDetailTopK = 17
)

type Api struct {
	BaseUrl        string        `env:"SHOP_API_BASE_URL" envDefault:"http://127.0.0.1:8000/"`
	UserId         string        `env:"SHOP_USER_ID" envDefault:"user1"`
	RequestTimeout time.Duration `env:"SHOP_API_TIMEOUT"`
}

type Recommendation struct {
	ForYouTopK        int `env:"SHOP_FOR_YOU_TOP_K" envDefault:"70"`
	BasketTopK        int `env:"SHOP_BASKET_TOP_K" envDefault:"35"`
	ProductDetailTopK int `env:"SHOP_PRODUCT_DETAIL_TOP_K" envDefault:"17"`
}

type Catalog struct {
	Path string `env:"SHOP_CATALOG_PATH" envDefault:"urunler.csv"`
}

type Log struct {
	Level string `env:"SHOP_LOG_LEVEL" envDefault:"info"`
}

type MockServer struct {
	Addr        string `env:"SHOP_MOCK_ADDR" envDefault:":8000"`
	CatalogPath string `env:"SHOP_MOCK_CATALOG_PATH"`
}

type Config struct {
	Api
	Recommendation
	Catalog
	Log
	MockServer
}

func LoadConfigOrPanic() Config {
	config, err := Load()
	if err != nil {
		panic(err)
	}
	return config
}

func Load() (Config, error) {
	var config *Config = new(Config)
	if err := env.Parse(config); err != nil {
		return Config{}, err
	}

	config.normalize()
	return *config, nil
}

func (c *Config) normalize() {

	if !strings.HasSuffix(c.BaseUrl, "/") {
		c.BaseUrl += "/"
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultApiTimeout
	}

	if c.ForYouTopK <= 0 {
		c.ForYouTopK = defaultForYouTopK
	}
	if c.BasketTopK <= 0 {
		c.BasketTopK = defaultBasketTopK
	}
	if c.ProductDetailTopK <= 0 {
		c.ProductDetailTopK = defaultProductDetailTopK
	}

	if c.MockServer.CatalogPath == "" {
		c.MockServer.CatalogPath = c.Catalog.Path
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Level)); err != nil || c.Level == "" {
		c.Level = zerolog.InfoLevel.String()
	}
}

// LogLevel returns the configured zerolog level.
func (c Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
