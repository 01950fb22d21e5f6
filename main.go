package main

import "github.com/iburimskiy/page-motion/internal/cli"

func main() {
	cli.Execute()
}
