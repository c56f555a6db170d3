package main

import "carmarket-service/cmd/carmarketctl/commands"

func main() {
	commands.Execute()
}
