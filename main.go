package main

import "github.com/orangejuice2508/algorithmic-pricing/cmd"

func main() {
	cmd.Execute()
}
