package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/usergate/internal/buildinfo"
	"github.com/dmitrijs2005/usergate/internal/client/config"
	"github.com/dmitrijs2005/usergate/internal/client/web"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := web.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
