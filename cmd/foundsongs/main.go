package main

import (
	"log"
	"os"
)

func main() {
	l := log.Default()
	if err := newRootCommand(l, os.Stdout).Execute(); err != nil {
		l.Println(err)
		os.Exit(1)
	}
}
