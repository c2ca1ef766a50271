package model

import (
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		WebSocket struct {
			Host string `yaml:"host"`
			Port int    `yaml:"port"`
		} `yaml:"web_socket"`
		Authentication struct {
			Enable bool   `yaml:"enable"`
			Secret string `yaml:"secret"`
		} `yaml:"authentication"`
	} `yaml:"server"`
	Game struct {
		MinPlayers     int           `yaml:"min_players"`
		DayResultDelay time.Duration `yaml:"day_result_delay"`
	} `yaml:"game"`
	GameLogger struct {
		Enable    bool   `yaml:"enable"`
		OutputDir string `yaml:"output_dir"`
		Filename  string `yaml:"filename"`
	} `yaml:"game_logger"`
}

func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("設定ファイルの読み込みに失敗しました", "error", err)
		return nil, err
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("設定ファイルのパースに失敗しました", "error", err)
		return nil, err
	}
	if config.Game.MinPlayers == 0 {
		config.Game.MinPlayers = 4
	}
	if config.Game.DayResultDelay == 0 {
		config.Game.DayResultDelay = 3000
	}
	return &config, nil
}
