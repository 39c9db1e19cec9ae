package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Storage struct {
	UploadDir     string
	PublicBaseURL string
}

type Config struct {
	Server Server
	DB     DB
	JWT    struct {
		Secret string
		Issuer string
		ExpMin int
	}
	Storage Storage
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5000)
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "api_rest_dbz")
	v.SetDefault("storage.upload_dir", "static/uploads")
	v.SetDefault("storage.public_base_url", "")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB:     DB{Host: v.GetString("db.host"), Port: v.GetInt("db.port"), User: v.GetString("db.user"), Pass: v.GetString("db.pass"), Name: v.GetString("db.name")},
		Storage: Storage{
			UploadDir:     v.GetString("storage.upload_dir"),
			PublicBaseURL: v.GetString("storage.public_base_url"),
		},
	}
	// An empty secret means a random one is generated at startup; outstanding
	// tokens do not survive a restart in that mode.
	cfg.JWT.Secret = v.GetString("jwt.secret")
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "api-rest-dbz"
	}
	cfg.JWT.ExpMin = v.GetInt("jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	if cfg.Storage.PublicBaseURL == "" {
		cfg.Storage.PublicBaseURL = fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	return cfg, nil
}
