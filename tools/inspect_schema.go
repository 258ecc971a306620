package main

import (
	"fmt"
	"log"

	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/database"
)

// Prints the sqlite DDL GORM generates for the guardroster models
func main() {
	db, err := database.Connect(&config.Config{DBType: "sqlite", DBDatabase: ":memory:", Env: "prod"}, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table' ORDER BY name").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var schema string
		db.Raw("SELECT sql FROM sqlite_master WHERE name = ?", table).Scan(&schema)
		fmt.Println(schema)

		var indexes []string
		db.Raw("SELECT sql FROM sqlite_master WHERE type='index' AND tbl_name = ? AND sql IS NOT NULL", table).Scan(&indexes)
		for _, idx := range indexes {
			fmt.Println(idx)
		}
	}
}
