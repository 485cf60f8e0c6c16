package main

import (
	"log"
	"os"

	"github.com/MrSnakeDoc/logstamp/internal/app"
)

func main() {
	if err := app.New().Run(os.Args[1:]); err != nil {
		log.Fatalf("❌ logstamp failed: %v", err)
	}
}
