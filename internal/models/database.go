package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TesoreriaContext string

const (
	DBContextURL TesoreriaContext = "tesoreria-backend-url"
)

// uniqueConstraint maps a unique index to the error returned to users
// when it is violated.
//
// SQLite reports the violated columns, PostgreSQL the name of the index,
// so both are matched.
type uniqueConstraint struct {
	index   string
	columns string
	err     error
}

var uniqueConstraints = []uniqueConstraint{
	{"idx_treasurers_username", "treasurers.username", ErrUsernameNotUnique},
	{"idx_students_tesorero_cedula", "students.tesorero_id, students.cedula", ErrCedulaNotUnique},
	{"idx_payments_cell", "payments.student_id, payments.month, payments.year", ErrPaymentCellNotUnique},
}

// Migrate migrates all models to the schema defined in the code
// and registers the callbacks that translate database errors.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Treasurer{}, Student{}, PaymentSettings{}, Payment{}, Expense{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return registerCallbacks(db)
}

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("tesoreria:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("tesoreria:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("tesoreria:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("tesoreria:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("tesoreria:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("tesoreria:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	return db.Callback().Delete().After("*").Register("tesoreria:after_delete_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	for _, c := range uniqueConstraints {
		if strings.Contains(msg, "UNIQUE constraint failed: "+c.columns) || strings.Contains(msg, c.index) {
			db.Error = c.err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	db.Error = generalError(db.Error)
}

func generalError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError

	// "sql: database is closed" is hard-coded in the sql module
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) || errors.As(err, &pgErr) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// transaction runs fc in a transaction. Errors beginning or committing the
// transaction do not pass through the callbacks and are translated here.
func transaction(db *gorm.DB, fc func(tx *gorm.DB) error) error {
	return generalError(db.Transaction(fc))
}

// isFriendly reports if err has already been translated for users.
func isFriendly(err error) bool {
	for _, c := range uniqueConstraints {
		if errors.Is(err, c.err) {
			return true
		}
	}
	return false
}
