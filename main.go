/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/killallgit/labeler-api/cmd"

// @title           Text Labeling API
// @version         1.0.0
// @description     A crowd-sourced text labeling API with sentence pipelines and label prediction
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/labeler-api
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Admin bearer token issued by /api/v1/auth/login
func main() {
	cmd.Execute()
}
