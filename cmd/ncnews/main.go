package main

import "nc-news-api/cmd/ncnews/commands"

func main() {
	commands.Execute()
}
