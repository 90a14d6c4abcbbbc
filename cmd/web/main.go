// @title           JobTrack API
// @version         1.0
// @description     Recruitment and onboarding tracker (Swagger documentation).
// @host            localhost:4000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "jobtrack_backend/internal/app"

func main() {
	app.Run()
}
