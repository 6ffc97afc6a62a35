package main

import "github.com/spreadmon/spreadmon/cmd"

func main() {
	cmd.Execute()
}
