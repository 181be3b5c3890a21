package main

import (
	"personal-info-system/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
