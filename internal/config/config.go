// internal/config/config.go
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Endpoints struct {
	Login       string `yaml:"login" json:"login"`
	UserProfile string `yaml:"user_profile" json:"user_profile"`
	Logout      string `yaml:"logout" json:"logout"`
	Posts       string `yaml:"posts" json:"posts"`
	PostAdd     string `yaml:"post_add" json:"post_add"`
	PostDetail  string `yaml:"post_detail" json:"post_detail"`
	PostUpdate  string `yaml:"post_update" json:"post_update"`
	PostDelete  string `yaml:"post_delete" json:"post_delete"`
	UploadImage string `yaml:"upload_image" json:"upload_image"`
}

type Config struct {
	App struct {
		Port int `yaml:"port" json:"port"`
	} `yaml:"app" json:"app"`

	API struct {
		BaseURL   string    `yaml:"base_url" json:"base_url"`
		TimeoutMS int       `yaml:"timeout_ms" json:"timeout_ms"`
		MaxRPS    float64   `yaml:"max_rps" json:"max_rps"`
		Burst     int       `yaml:"burst" json:"burst"`
		Endpoints Endpoints `yaml:"endpoints" json:"endpoints"`
	} `yaml:"api" json:"api"`

	Storage struct {
		Backend        string `yaml:"backend" json:"backend"` // keyring | file
		KeyringService string `yaml:"keyring_service" json:"keyring_service"`
		File           string `yaml:"file" json:"file"`
	} `yaml:"storage" json:"storage"`

	Validation struct {
		Mobile struct {
			Pattern string `yaml:"pattern" json:"pattern"`
		} `yaml:"mobile" json:"mobile"`
		Password struct {
			MinLength int `yaml:"min_length" json:"min_length"`
			MaxLength int `yaml:"max_length" json:"max_length"`
		} `yaml:"password" json:"password"`
		Post struct {
			TitleMinLength   int `yaml:"title_min_length" json:"title_min_length"`
			TitleMaxLength   int `yaml:"title_max_length" json:"title_max_length"`
			ContentMinLength int `yaml:"content_min_length" json:"content_min_length"`
			ContentMaxLength int `yaml:"content_max_length" json:"content_max_length"`
			MaxTags          int `yaml:"max_tags" json:"max_tags"`
		} `yaml:"post" json:"post"`
	} `yaml:"validation" json:"validation"`

	Sync struct {
		ProfileRefreshSeconds int `yaml:"profile_refresh_seconds" json:"profile_refresh_seconds"`
	} `yaml:"sync" json:"sync"`
}

const (
	BackendKeyring = "keyring"
	BackendFile    = "file"
)

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	// default.yml is compiled in; a parse failure is a build defect
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("config: embedded default.yml: " + err.Error())
	}
	return cfg
}

func (c Config) Timeout() time.Duration {
	if c.API.TimeoutMS <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.API.TimeoutMS) * time.Millisecond
}
