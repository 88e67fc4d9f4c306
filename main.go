package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/pong/config"
	"github.com/automoto/pong/host/ebitenhost"
	"github.com/automoto/pong/host/termhost"
	"github.com/automoto/pong/limiter"
	"github.com/automoto/pong/logger"
	"github.com/automoto/pong/scenes"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	path, _ := flags.GetString("config")
	if err := config.Load(path, flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logCfg := config.Log
	if config.C.Host == "term" {
		var err error
		if logCfg, err = logger.ForTerminal(logCfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	closer, err := logger.Init(logCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closer.Close()

	lim, err := limiter.NewFPSLimiter(config.C.FPS)
	if err != nil {
		logrus.WithError(err).Error("frame limiter")
		return 1
	}

	logrus.WithFields(logrus.Fields{
		"host":   config.C.Host,
		"width":  config.C.Width,
		"height": config.C.Height,
		"fps":    config.C.FPS,
		"points": config.Match.PointsToWin,
	}).Info("starting")

	switch config.C.Host {
	case "term":
		err = runTerminal(lim)
	default:
		err = runWindow(lim)
	}

	if err != nil && !errors.Is(err, scenes.ErrQuit) {
		logrus.WithError(err).Error("game stopped")
		return 1
	}
	logrus.Info("quit")
	return 0
}

func runWindow(lim *limiter.FpsLimiter) error {
	ebitenhost.Configure()

	scene, err := scenes.NewMatchScene(ebitenhost.Graphics{})
	if err != nil {
		return err
	}
	defer scene.Close()

	return ebitenhost.Run(scene, lim)
}

func runTerminal(lim *limiter.FpsLimiter) error {
	h, err := termhost.New()
	if err != nil {
		return err
	}
	defer h.Close()

	scene, err := scenes.NewMatchScene(h.Graphics())
	if err != nil {
		return err
	}
	defer scene.Close()

	return termhost.Run(h, scene, lim)
}
