package main

import (
	"github.com/tasklab/go-tasks/app"
)

// @title Task Manager API
// @version 1.0.0
// @description Multi-user task tracking API with JWT bearer authentication.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
