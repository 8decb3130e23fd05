package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/palemoky/landlord-engine/internal/config"
	"github.com/palemoky/landlord-engine/internal/game"
	"github.com/palemoky/landlord-engine/internal/game/card"
	"github.com/palemoky/landlord-engine/internal/game/player"
	"github.com/palemoky/landlord-engine/internal/logger"
	"github.com/palemoky/landlord-engine/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		logrus.Fatalf("加载配置文件失败: %v", err)
	}

	log, err := logger.Init(cfg.Log)
	if err != nil {
		logrus.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	model := ui.NewHotSeatModel()
	session, err := game.NewSession(card.StandardDeck{}, player.NewMemoryStore(cfg.Players...), cfg.Players,
		game.WithListener(model),
		game.WithLogger(log),
	)
	if err != nil {
		log.WithError(err).Fatal("创建游戏失败")
	}
	if err := session.Start(); err != nil {
		log.WithError(err).Fatal("发牌失败")
	}

	log.WithField("session", session.ID()).Info("🎮 斗地主开始")
	if err := ui.Run(session, model, cfg.UI.AltScreen); err != nil {
		log.WithError(err).Error("界面异常退出")
	}
}
