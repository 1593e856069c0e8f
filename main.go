package main

import "messenger-hub/config"

func main() {
	config.RunServer()
}
