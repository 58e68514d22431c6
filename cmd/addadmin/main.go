package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Boren168-g/Daa-Management-System/app/config"
	"github.com/Boren168-g/Daa-Management-System/app/database"
)

// Bootstraps the first administrator account so the web signup flow is not
// the only way in.
func main() {
	name := flag.String("name", "", "administrator login name")
	password := flag.String("password", "", "administrator password")
	flag.Parse()

	if *name == "" || *password == "" {
		log.Fatal("both -name and -password are required")
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	id, err := database.CreateAdministrator(db, *name, *password)
	if err != nil {
		log.Fatal("Error creating administrator: ", err)
	}
	fmt.Printf("Administrator created successfully: %s (id=%d)\n", *name, id)
}
