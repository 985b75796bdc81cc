package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/Flarenzy/subnet-practice/docs"
	"github.com/Flarenzy/subnet-practice/internal/app"
)

//	@title			Subnet Practice API
//	@version		1.0
//	@description	Subnetting drills: derive a subnet, plan VLSM allocations and check typed answers.

//	@contact.name	API Support
//	@contact.url	https://github.com/Flarenzy/subnet-practice/issues

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:4040
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
