package main

import (
	"flag"
	"log"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/cmd"
)

func main() {
	shouldRunServer := flag.Bool("server", false, "Run the grid server")
	flag.Parse()

	if !*shouldRunServer {
		log.Println("nothing to run, use -server")
		return
	}
	if err := cmd.RunServer(); err != nil {
		log.Fatal(err)
	}
}
