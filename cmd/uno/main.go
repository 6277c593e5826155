package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
)

var envFile = flag.String("env", ".env", "optional .env file")

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	flag.Parse()

	if err := run(); err != nil && err != consts.ErrorsExist {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	service.SetIdleTimeout(conf.IdleTimeout)

	session, err := service.Create(conf.Players, conf.Rules)
	if err != nil {
		return err
	}
	defer service.Remove(session.ID)

	controllers := make([]player.Controller, 0, len(session.Players))
	for _, name := range session.Players {
		controllers = append(controllers, player.NewHumanPlayer(name))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ui.Print(msg.Message.Welcome())
	return session.Do(func(g *game.Game) error {
		player.NewAnnouncer(g.Events())
		winner, err := player.Drive(ctx, g, controllers)
		if err == consts.ErrorsStalled {
			ui.Print(msg.Message.NoWinner())
			return nil
		}
		if err != nil {
			return err
		}
		log.Infof("session %d finished, %s won\n", session.ID, session.Players[winner])
		return nil
	})
}
