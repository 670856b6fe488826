package main

import (
	"Users2CSV/bs_clients"
	"Users2CSV/common"
	h "Users2CSV/helpers"
	"Users2CSV/lib"
	"fmt"
	"github.com/niocs/sflag"
	"github.com/pkg/errors"
	"io"
	"os"
	"unicode/utf8"
)

var opt = struct {
	Usage string "Usage string"
	In    string "Input text file path, '-' for STDIN, s3://bucket/key or az://container/blob|users_raw.txt"
	Out   string "Output CSV file path, '-' for STDOUT, s3://bucket/key or az://container/blob|users_parsed.csv"
	Conf  string "Optional .properties or .yaml file. Overrides In, Out, Db, Table and CRLF"
	Db    string "Optional DB connection string or path to a DB connection properties file"
	Table string "DB table name to load the records into|users"
	CRLF  bool   "Terminate each CSV line with CR LF instead of LF"
	X     bool   "Verbose logging"
}{}

func usage() {
	fmt.Print(`
Convert whitespace separated user records into CSV.
Each record starts with a numeric user ID followed by first name, last name, phone and email.
Anything after the email up to the next user ID is saved as Flags (',' is replaced with ';').

Usage: users2csv [--In <file|->] [--Out <file|->]
                 [--Conf <file.properties|file.yaml>]
                 [--Db <connection string|db.properties>] [--Table <table>]
                 [--CRLF] [--X]

    users2csv --In ./users_raw.txt --Out s3://my-bucket/users/users_parsed.csv
    cat users_raw.txt | users2csv --In - --Out - --Db ./users.db
` + "\n")
}

type summary struct {
	Tokens int
	Rows   int
	Output string
}

// Populate all global variables
func setGlobals() error {
	common.Debug = opt.X || h.GetBoolEnv("_DEBUG", false)
	h.DEBUG = common.Debug
	common.InFile = opt.In
	common.OutFile = opt.Out
	common.DbConnStr = opt.Db
	common.TableName = opt.Table
	common.UseCRLF = opt.CRLF
	common.SlowMS = h.GetEnvInt64("SLOW_MS", common.SlowMS)

	if len(opt.Conf) > 0 {
		conf, err := lib.ReadConf(opt.Conf)
		if err != nil {
			return err
		}
		lib.ApplyConf(conf)
	}
	if len(common.InFile) == 0 {
		common.InFile = common.DEFAULT_IN_FILE
	}
	if len(common.OutFile) == 0 {
		common.OutFile = common.DEFAULT_OUT_FILE
	}
	if len(common.TableName) == 0 {
		common.TableName = common.DEFAULT_TABLE
	}
	// If it's a properties file (eg. nexus-store.properties), read the file and get the DB connection string
	if len(common.DbConnStr) > 0 && lib.DriverName(common.DbConnStr) == "sqlite3" {
		if _, err := os.Stat(common.DbConnStr); err == nil {
			if props, err := h.ReadPropertiesFile(common.DbConnStr); err == nil && len(props["jdbcUrl"]) > 0 {
				common.DbConnStr, err = lib.GenDbConnStrFromFile(common.DbConnStr)
				if err != nil {
					return err
				}
			}
		}
	}
	h.Log("DEBUG", fmt.Sprintf("In: %s, Out: %s, Table: %s, CRLF: %v", common.InFile, common.OutFile, common.TableName, common.UseCRLF))
	return nil
}

// convert reads the whole input, writes the CSV and returns the counters.
func convert(inFile string, outFile string) (summary, []lib.Record, error) {
	s := summary{Output: outFile}
	inBytes, err := bs_clients.GetClient(inFile).ReadPath(inFile)
	if err != nil {
		return s, nil, errors.Wrapf(err, "reading %s", inFile)
	}
	if !utf8.Valid(inBytes) {
		return s, nil, errors.Errorf("%s is not valid UTF-8", inFile)
	}
	tokens, records := lib.Parse(string(inBytes))
	s.Tokens = len(tokens)
	h.Log("DEBUG", fmt.Sprintf("Read %d bytes, %d tokens, %d records from %s", len(inBytes), len(tokens), len(records), inFile))

	csvBytes, err := lib.ToCSV(records, common.UseCRLF)
	if err != nil {
		return s, nil, err
	}
	if err = bs_clients.GetClient(outFile).WriteToPath(outFile, csvBytes); err != nil {
		return s, nil, errors.Wrapf(err, "writing %s", outFile)
	}
	s.Rows = len(records)
	return s, records, nil
}

func loadIntoDb(dbConnStr string, tableName string, records []lib.Record) error {
	db, driver, err := lib.OpenDb(dbConnStr)
	if err != nil {
		return err
	}
	defer db.Close()
	inserted, err := lib.LoadRecords(db, driver, tableName, records)
	if err != nil {
		return err
	}
	h.Log("INFO", fmt.Sprintf("Inserted %d records into %s (%s)", inserted, tableName, driver))
	return nil
}

func printSummary(w io.Writer, s summary) {
	fmt.Fprintf(w, "Tokens: %d\n", s.Tokens)
	fmt.Fprintf(w, "Rows written: %d\n", s.Rows)
	fmt.Fprintf(w, "Output: %s\n", s.Output)
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		usage()
		return
	}
	sflag.Parse(&opt)
	if err := setGlobals(); err != nil {
		h.Log("ERROR", err.Error())
		os.Exit(1)
	}

	s, records, err := convert(common.InFile, common.OutFile)
	if err != nil {
		h.Log("ERROR", err.Error())
		os.Exit(1)
	}
	if len(common.DbConnStr) > 0 {
		if err = loadIntoDb(common.DbConnStr, common.TableName, records); err != nil {
			h.Log("ERROR", err.Error())
			os.Exit(1)
		}
	}

	// Not mixing the summary into the CSV when it is written to STDOUT
	var w io.Writer = os.Stdout
	if common.OutFile == common.STDIO {
		w = os.Stderr
	}
	printSummary(w, s)
}
