package main

import "github.com/kubishi/yaduha-2/cmd"

func main() {
	cmd.Execute()
}
