package main

import "github.com/Mareeswari-2005/Sara-The-road-assist/cmd"

func main() {
	cmd.Execute()
}
