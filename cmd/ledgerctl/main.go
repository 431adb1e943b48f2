package main

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/blindledger/internal/client/cli"
	"github.com/dmitrijs2005/blindledger/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg, cli.DialGRPC)

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
