package schema

import (
	"fmt"

	"gorm.io/gorm"
)

// Create creates all tables of a run using GORM migrator against the
// dynamic table names. Tables must not exist yet.
func Create(db *gorm.DB, tables Tables) error {
	for _, v := range tables.Models() {
		err := db.Table(v.Name).Migrator().CreateTable(v.Model)
		if err != nil {
			return fmt.Errorf("cannot create table %s: %w", v.Name, err)
		}
	}
	return nil
}
