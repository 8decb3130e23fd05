// Package config 加载 YAML 配置，并允许用 LANDLORD_ 前缀的环境变量覆盖。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/palemoky/landlord-engine/internal/game/player"
)

// EnvPrefix 环境变量前缀，例如 LANDLORD_LOG_LEVEL
const EnvPrefix = "landlord"

// 默认值
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultAltScreen = true
)

// Config 游戏配置
type Config struct {
	Players []player.Info `yaml:"players" ignored:"true"` // 按出牌顺序排列的三名玩家
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text 或 json
	File   string `yaml:"file"`   // 为空时写入 ~/.fight-the-landlord/debug.log
}

// UIConfig 终端界面配置
type UIConfig struct {
	AltScreen bool `yaml:"alt_screen" split_words:"true"`
}

func defaultPlayers() []player.Info {
	return []player.Info{
		{ID: "1001", Name: "王二狗"},
		{ID: "1002", Name: "周扒皮"},
		{ID: "1003", Name: "李三刀"},
	}
}

// Load 加载配置文件，之后应用环境变量
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.Players = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Players) == 0 {
		cfg.Players = defaultPlayers()
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault 配置文件不存在时使用默认配置，环境变量同样生效
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv 应用 LANDLORD_ 环境变量后再校验
func (c *Config) applyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("环境变量: %w", err)
	}
	return c.Validate()
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Players: defaultPlayers(),
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		UI: UIConfig{
			AltScreen: defaultAltScreen,
		},
	}
}

// Validate 检查玩家人数、ID 和日志格式
func (c *Config) Validate() error {
	if len(c.Players) != 3 {
		return fmt.Errorf("需要 3 名玩家，实际 %d 名", len(c.Players))
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.ID == "" {
			return fmt.Errorf("玩家 %q 缺少 id", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("玩家 id %q 重复", p.ID)
		}
		seen[p.ID] = true
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("未知的日志格式 %q", c.Log.Format)
	}
	return nil
}
