package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/nachtrunde/werwolf-server/core"
	"github.com/nachtrunde/werwolf-server/model"
)

var (
	version  = "dev"
	revision = ""
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("環境変数ファイルが見つからないため、スキップします", "error", err)
	}
	configPath := flag.String("c", "./config/default.yml", "path to config file")
	flag.Parse()
	config, err := model.LoadFromPath(*configPath)
	if err != nil {
		slog.Error("設定ファイルの読み込みに失敗しました", "path", *configPath, "error", err)
		os.Exit(1)
	}
	core.SetVersion(version, revision)
	server, err := core.NewServer(*config)
	if err != nil {
		slog.Error("サーバの作成に失敗しました", "error", err)
		os.Exit(1)
	}
	server.Run()
}
