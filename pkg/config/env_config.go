package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// AppEnv 从环境变量读取的启动参数
// 命令行参数优先于环境变量
type AppEnv struct {
	ConfigPath    string `env:"TRUVIEW_CONFIG" envDefault:"data/carousels.yaml"`
	Verbose       bool   `env:"TRUVIEW_VERBOSE"`
	WindowWidth   int    `env:"TRUVIEW_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight  int    `env:"TRUVIEW_WINDOW_HEIGHT" envDefault:"720"`
	ReducedMotion bool   `env:"TRUVIEW_REDUCED_MOTION"` // 关闭所有自动播放
}

// LoadEnv 读取进程环境变量
func LoadEnv() (AppEnv, error) {
	return parseEnv(env.Options{})
}

// LoadEnvFrom 从给定的键值表读取（测试使用）
func LoadEnvFrom(vars map[string]string) (AppEnv, error) {
	return parseEnv(env.Options{Environment: vars})
}

func parseEnv(opts env.Options) (AppEnv, error) {
	var cfg AppEnv
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return AppEnv{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return AppEnv{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	return cfg, nil
}
