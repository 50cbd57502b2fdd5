package main

import "dealstream/cmd/dealsctl/cli"

func main() {
	cli.Execute()
}
