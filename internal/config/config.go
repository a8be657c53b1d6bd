package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Mysql MysqlConfig
	Jwt   JwtConfig
	Http  HttpConfig
}

type HttpConfig struct {
	Port       string `envconfig:"HTTP_PORT" default:"8080"`
	CorsOrigin string `envconfig:"CORS_ORIGIN" default:"*"`
}

type JwtConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type MysqlConfig struct {
	User   string `envconfig:"MYSQL_USER"`
	Passwd string `envconfig:"MYSQL_PASSWORD"`
	Host   string `envconfig:"MYSQL_HOST"`
	DBName string `envconfig:"MYSQL_DATABASE"`
}

func New() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
