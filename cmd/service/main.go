// File: cmd/service/main.go
// @title        Task Management API
// @version      1.0
// @description  REST backend for per-user task management with admin analytics
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"log"
)

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
