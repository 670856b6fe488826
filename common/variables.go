/*
To store common variables
*/

package common

var Debug bool

const DEFAULT_IN_FILE = "users_raw.txt"
const DEFAULT_OUT_FILE = "users_parsed.csv"
const DEFAULT_TABLE = "users"
const STDIO = "-" // Read from STDIN or write to STDOUT

// Header of the output CSV. The order is also the order of the fields in each row.
var Header = []string{"user_ID", "First Name", "Last Name", "Phone Number", "Email", "Flags"}

// Columns of the DB table, same order as Header
var DbColumns = []string{"user_id", "first_name", "last_name", "phone", "email", "flags"}

// Paths / URIs (eg. 's3://bucket/key', 'az://container/blob')
var InFile = DEFAULT_IN_FILE
var OutFile = DEFAULT_OUT_FILE

// Output related
var UseCRLF bool // The original csv output used "\r\n"

// Database related
var DbConnStr = ""
var TableName = DEFAULT_TABLE

// Counters and misc.
var SlowMS int64 = 1000
