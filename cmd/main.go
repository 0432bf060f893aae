package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	appName = "canteen-service"

	flagConfig = "config"
)

func main() {
	app := &cli.App{
		Name:  appName,
		Usage: "бронирование мест в столовых",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Value:   "config.toml",
				Usage:   "путь к файлу конфигурации",
				EnvVars: []string{"CANTEEN_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "запустить HTTP API",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "миграции схемы PostgreSQL",
				Subcommands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "применить все миграции",
						Action: migrateUp,
					},
					{
						Name:   "down",
						Usage:  "откатить все миграции",
						Action: migrateDown,
					},
				},
			},
			{
				Name:   "normalize",
				Usage:  "привести старые записи к текущему формату и выйти",
				Action: normalize,
			},
		},
		// Без команды запускаем сервер, как раньше
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}
