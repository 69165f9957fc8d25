package main

import "atlasweb_backend/internal/app"

func main() {
	app.Run()
}
