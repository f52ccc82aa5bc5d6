// internal/config/database.go
package config

import (
	"fmt"
)

func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

// SQLiteDSN enables foreign-key enforcement, which the cascade-delete
// behaviour of the schema depends on.
func (d *DatabaseConfig) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_foreign_keys=on", d.SQLitePath)
}
