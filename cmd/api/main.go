package main

import (
	_ "storeledger/docs"
	"storeledger/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Store Payment Ledger API
// @version         1.0
// @description     Payment lifecycle and balance ledger for merchant stores.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
