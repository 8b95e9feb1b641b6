package main

import "github.com/klauscode/anki-gacha/cmd/gacha/root"

func main() {
	root.Execute()
}
