package main

import "github.com/yume-app/yume/internal/cli"

func main() {
	cli.Execute()
}
