package main

import (
	"flag"
	"log"

	"github.com/gonewx/truview/pkg/app"
	"github.com/gonewx/truview/pkg/config"
	"github.com/gonewx/truview/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 环境变量提供默认值，命令行参数覆盖
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal(err)
	}

	configPath := flag.String("config", env.ConfigPath, "轮播配置文件路径")
	verbose := flag.Bool("verbose", env.Verbose, "输出详细日志")
	variant := flag.String("variant", "", "只预览指定的轮播变体，如 testimonials")
	reducedMotion := flag.Bool("reduced-motion", env.ReducedMotion, "关闭自动播放")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		ConfigPath:    *configPath,
		Variant:       *variant,
		ReducedMotion: *reducedMotion,
		WindowWidth:   env.WindowWidth,
		WindowHeight:  env.WindowHeight,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.GetSceneManager().Close()

	ebiten.SetWindowSize(env.WindowWidth, env.WindowHeight)
	ebiten.SetWindowTitle("TruView")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
