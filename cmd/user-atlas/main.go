package main

import (
	"flag"
	"os"

	"github.com/atlasgrid/user-atlas/userservice"
)

func main() {
	// Optional driver flag override (memory | sqlite | postgres)
	dbDriver := flag.String("db-driver", "", "Override USER_ATLAS_DB_DRIVER (memory, sqlite, postgres)")
	flag.Parse()

	if *dbDriver != "" {
		_ = os.Setenv("USER_ATLAS_DB_DRIVER", *dbDriver)
	}

	if err := userservice.Run(); err != nil {
		os.Exit(1)
	}
}
