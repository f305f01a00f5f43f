package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shiva2212/fraud-detection-project/config"
	"github.com/Shiva2212/fraud-detection-project/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	myApp := &app.App{}
	myApp.Initialize(ctx, cfg)

	go myApp.Run()

	<-ctx.Done()

	if err := myApp.Consumer.Close(); err != nil {
		log.Println("Error closing consumer:", err)
	}

	log.Println("Fraud detection service stopped")
}
