package main

import "github.com/vogiahuy257/GoldDataProject/cmd"

func main() {
	cmd.Execute()
}
