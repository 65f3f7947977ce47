package main

import "golang-nmgateway/cmd"

func main() {
	cmd.Execute()
}
