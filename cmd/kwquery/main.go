package main

import "keyscout/cmd/kwquery/cmd"

func main() {
	cmd.Execute()
}
