package main

import (
	"context"
	"log"

	"github.com/medsupply/inventory-case-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("inventory case API failed: %v", err)
	}
}
