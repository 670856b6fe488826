// Package lib: DB related functions to copy the parsed records into a table.
package lib

import (
	"Users2CSV/common"
	h "Users2CSV/helpers"
	"database/sql"
	"fmt"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"regexp"
	"strings"
	"time"
)

var rxTableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
var rxJdbcUrl = regexp.MustCompile(`jdbc:postgresql://([^/:]+):?(\d*)/([^?]+)\??(.*)`)

// GenDbConnStrFromFile generates lib/pq connection string from a properties file which has jdbcUrl, username and password.
func GenDbConnStrFromFile(filePath string) (string, error) {
	props, err := h.ReadPropertiesFile(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "reading DB properties %s", filePath)
	}
	props["jdbcUrl"] = strings.ReplaceAll(props["jdbcUrl"], "\\", "")
	matches := rxJdbcUrl.FindStringSubmatch(props["jdbcUrl"])
	if matches == nil {
		return "", errors.Errorf("no valid 'jdbcUrl' in %s", filePath)
	}
	hostname := matches[1]
	port := matches[2]
	database := matches[3]
	if len(port) == 0 {
		port = "5432"
	}
	params := ""
	if len(matches[4]) > 0 {
		params = " " + strings.ReplaceAll(matches[4], "&", " ")
	}
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s%s", hostname, port, props["username"], props["password"], database, params)
	h.Log("INFO", fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s%s", hostname, port, props["username"], "********", database, params))
	return connStr, nil
}

// DriverName decides the database/sql driver from the connection string.
func DriverName(dbConnStr string) string {
	lower := strings.ToLower(dbConnStr)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") || strings.Contains(lower, "host=") {
		return "postgres"
	}
	return "sqlite3"
}

func OpenDb(dbConnStr string) (*sql.DB, string, error) {
	if len(dbConnStr) == 0 {
		return nil, "", errors.New("empty DB connection string")
	}
	driver := DriverName(dbConnStr)
	if driver == "postgres" && !strings.Contains(dbConnStr, "sslmode") {
		if strings.Contains(dbConnStr, "://") {
			sep := "?"
			if strings.Contains(dbConnStr, "?") {
				sep = "&"
			}
			dbConnStr = dbConnStr + sep + "sslmode=disable"
		} else {
			dbConnStr = dbConnStr + " sslmode=disable"
		}
	}
	db, err := sql.Open(driver, dbConnStr)
	if err != nil {
		return nil, driver, errors.Wrapf(err, "opening %s database", driver)
	}
	if driver == "sqlite3" {
		// Each connection to ':memory:' would be a different database
		db.SetMaxOpenConns(1)
	}
	return db, driver, nil
}

func placeholders(driver string, num int) string {
	ph := make([]string, num)
	for i := range ph {
		if driver == "postgres" {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ",")
}

// LoadRecords creates the table if missing and inserts all records in one transaction.
func LoadRecords(db *sql.DB, driver string, tableName string, records []Record) (int64, error) {
	if !rxTableName.MatchString(tableName) {
		return 0, errors.Errorf("invalid table name: '%s'", tableName)
	}
	defer h.Elapsed(time.Now().UnixMilli(), fmt.Sprintf("Slow insert of %d records into %s", len(records), tableName), common.SlowMS)

	fieldsSql := strings.Join(common.DbColumns, " TEXT,") + " TEXT"
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", tableName, fieldsSql)
	h.Log("DEBUG", query)
	if _, err := db.Exec(query); err != nil {
		return 0, errors.Wrapf(err, "creating table %s", tableName)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, errors.Wrap(err, "starting transaction")
	}
	query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", tableName, strings.Join(common.DbColumns, ","), placeholders(driver, len(common.DbColumns)))
	h.Log("DEBUG", query)
	stmt, err := tx.Prepare(query)
	if err != nil {
		_ = tx.Rollback()
		return 0, errors.Wrapf(err, "preparing %s", query)
	}
	defer stmt.Close()

	var insCnt int64
	for _, r := range records {
		if _, err = stmt.Exec(r.UserID, r.FirstName, r.LastName, r.Phone, r.Email, r.Flags); err != nil {
			_ = tx.Rollback()
			return 0, errors.Wrapf(err, "inserting user_ID %s", r.UserID)
		}
		insCnt++
	}
	if err = tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "committing")
	}
	return insCnt, nil
}
