// Command bank is the terminal client of the Patterson bank account API.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/etnz/bank/cmd"
	"github.com/etnz/bank/docs"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	completion().Complete(name)

	// BANK_API_URL can be kept in a .env file of the working directory.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("cannot load .env: %v", err)
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"api":         predict.Something,
			"storage-dir": predict.Dirs("*"),
			"format":      predict.Set(cmd.Formats),
			"timeout":     predict.Something,
			"redis":       predict.Something,
		},
		Sub: map[string]*complete.Command{
			"register": {
				Flags: map[string]complete.Predictor{
					"user":        predict.Something,
					"currency":    predict.Set{"USD", "EUR", "GBP", "$"},
					"description": predict.Something,
					"balance":     predict.Something,
				},
				Args: predict.Nothing,
			},
			"login":     {Args: predict.Something},
			"logout":    {Args: predict.Nothing},
			"dashboard": {Args: predict.Nothing},
			"open":      {Args: predict.Set{"/login", "/dashboard"}},
			"chart": {
				Flags: map[string]complete.Predictor{"o": predict.Files("*.png")},
				Args:  predict.Nothing,
			},
			"topic": {Args: predict.Set(append(topics, "readme", "*"))},
		},
	}
}
