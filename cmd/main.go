// cmd/main.go
package main

import (
	"account-api/app"

	_ "account-api/docs"
)

// @title           Account Service API
// @version         1.0
// @description     Minimal account-management API: create an account, fetch an account by ID.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
