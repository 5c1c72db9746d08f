package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
)

//go:embed schema.sql
var schema string

func NewPostgresConnection(cfg configs.DatabaseConfig) (*DBObject, error) {
	dbObject := &DBObject{}
	connectionString := buildConnectionString(cfg)
	err := dbObject.Open(cfg.Driver, connectionString)
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Failed to connect to Postgre-Client: %v", err)
		return nil, err
	}
	err = dbObject.Ping()
	if err != nil {
		dbObject.Close()
		return nil, err
	}
	err = dbObject.Migrate()
	if err != nil {
		dbObject.Close()
		return nil, err
	}
	log.Println("[DEBUG] [PhotoLike-Service] Successful connect to Postgre-Client")
	return dbObject, nil
}

// NewDBObject wraps an already opened pool.
func NewDBObject(db *sql.DB) *DBObject {
	return &DBObject{connect: db}
}

type DBObject struct {
	connect *sql.DB
}

func (db *DBObject) Open(driverName, connectionString string) error {
	var err error
	db.connect, err = sql.Open(driverName, connectionString)
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Postgre-Client-Open error: %v", err)
		return err
	}
	db.connect.SetMaxOpenConns(25)
	db.connect.SetMaxIdleConns(25)
	db.connect.SetConnMaxLifetime(5 * time.Minute)
	return nil
}

func (db *DBObject) Migrate() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := db.connect.ExecContext(ctx, schema); err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Postgre-Client-Migrate error: %v", err)
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (db *DBObject) Close() {
	db.connect.Close()
	log.Println("[DEBUG] [PhotoLike-Service] Successful close Postgre-Client")
}

func (db *DBObject) Ping() error {
	err := db.connect.Ping()
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Postgre-Client-Ping error: %v", err)
		return err
	}
	return nil
}
func buildConnectionString(cfg configs.DatabaseConfig) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)
}
