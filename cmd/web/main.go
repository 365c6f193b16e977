package main

import "wantly_backend/internal/app"

func main() {
	app.Run()
}
