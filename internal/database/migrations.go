package database

import (
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema
// de la base de datos en instalaciones anteriores
func RunMigrations() error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para añadir la columna notes a las tablas de entradas
	addNotesColumnsSQL := `
	ALTER TABLE monthly_entries ADD COLUMN notes TEXT;
	ALTER TABLE daily_entries ADD COLUMN notes TEXT;
	`

	if _, err := DB.Exec(addNotesColumnsSQL); err != nil {
		// No retornamos error porque SQLite falla si la columna ya existe
		// y queremos que la migración continúe
		log.Printf("Migración de columnas notes omitida: %v", err)
	}

	return nil
}
