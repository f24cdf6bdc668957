package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	DBContextURL ContextKey = "fintrack-backend-url"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// sqliteConstraint is the primary result code of all SQLite constraint
// violations. Extended codes carry it in their lowest byte.
const sqliteConstraint = 19

// Connect opens the database, migrates the schema and configures the
// connection pool. An empty driver means SQLite.
func Connect(driver, dsn string) error {
	config := &gorm.Config{
		Logger: newGormLogger(log.Logger),
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	var db *gorm.DB
	var err error

	switch driver {
	case DriverSQLite, "":
		db, err = connectSQLite(dsn, config)
	case DriverPostgres:
		db, err = connectServer(postgres.Open(dsn), config)
	case DriverMySQL:
		db, err = connectServer(mysql.Open(dsn), config)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return err
	}

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

// connectSQLite migrates with foreign keys disabled since sqlite does not
// support ALTER COLUMN. Tables are copied to a temporary table,
// then the table is dropped and recreated.
func connectSQLite(dsn string, config *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	// Close the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	dsn = fmt.Sprintf("%s%s_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn, separator)

	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all writes and prevents SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func connectServer(dialector gorm.Dialector, config *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("fintrack:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("fintrack:after_query").Register("fintrack:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("fintrack:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("fintrack:after_create").Register("fintrack:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("fintrack:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("fintrack:after_update").Register("fintrack:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("fintrack:after_delete", deleteCallback)
	if err != nil {
		return err
	}

	return db.Callback().Delete().After("fintrack:after_delete").Register("fintrack:after_delete_general", generalCallback)
}

var plural = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		name = plural.ReplaceAllString(name, "y")

		// Remove plural "s", except for savings
		if name != "savings" {
			name = strings.TrimSuffix(name, "s")
		}

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

type constraint int

const (
	constraintNone constraint = iota
	constraintUnique
	constraintForeignKey
)

// violatedConstraint classifies constraint violations for all supported drivers.
func violatedConstraint(err error) constraint {
	msg := err.Error()

	// Foreign keys checked at the end of a statement are reported with the
	// trigger code (1811) instead of the foreign key code (787), so SQLite
	// errors are told apart by message.
	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code()&0xff != sqliteConstraint {
			return constraintNone
		}

		switch {
		case strings.Contains(msg, "FOREIGN KEY constraint failed"):
			return constraintForeignKey
		case strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "PRIMARY KEY constraint failed"):
			return constraintUnique
		}
		return constraintNone
	}

	switch {
	case strings.Contains(msg, "duplicate key value"), strings.Contains(msg, "Duplicate entry"):
		return constraintUnique
	case strings.Contains(msg, "foreign key constraint"):
		return constraintForeignKey
	}
	return constraintNone
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if violatedConstraint(db.Error) != constraintUnique {
		return
	}

	msg := db.Error.Error()
	switch {
	case strings.Contains(msg, "email"):
		db.Error = ErrEmailTaken
	case strings.Contains(msg, "invoice_number"), strings.Contains(msg, "transaction_"), strings.Contains(msg, "sequences"):
		db.Error = ErrSequenceConflict
	case strings.Contains(msg, "payment_methods"):
		db.Error = ErrDefaultConflict
	}
}

// deleteCallback reports resources that are still referenced instead of a
// raw foreign key error.
func deleteCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if violatedConstraint(db.Error) == constraintForeignKey {
		db.Error = ErrResourceInUse
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for _, e := range userFacingErrors {
		if errors.Is(db.Error, e) {
			return
		}
	}

	// A general error where we cannot provide more useful information to the end user
	// We log the error and provide a general error message so that server admins can debug
	log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
	db.Error = ErrGeneral
}

// Migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(
		User{},
		Session{},
		Category{},
		Expense{},
		Revenue{},
		Budget{},
		Invoice{},
		InvoiceItem{},
		Savings{},
		Transaction{},
		PaymentMethod{},
		Notification{},
		Sequence{},
	)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	// MySQL has no partial indexes, there the transaction in
	// SetDefaultPaymentMethod is the only guard.
	if db.Dialector.Name() != DriverMySQL {
		err = db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_payment_methods_single_default ON payment_methods (user_id) WHERE is_default").Error
		if err != nil {
			return fmt.Errorf("error creating default payment method index: %w", err)
		}
	}

	return nil
}
