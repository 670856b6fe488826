package helpers

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

var DEBUG bool

func Log(level string, message interface{}) {
	if level != "DEBUG" || DEBUG {
		log.SetPrefix(time.Now().Format("2006-01-02 15:04:05") + " [" + level + "] ")
		log.SetFlags(0)
		log.Printf("%v\n", message)
	}
}

// Elapsed logs the message with the duration when it took longer than thresholdMs.
// Usage: defer Elapsed(time.Now().UnixMilli(), "slow read", 1000)
func Elapsed(startMs int64, message string, thresholdMs int64) int64 {
	elapsedMs := time.Now().UnixMilli() - startMs
	if elapsedMs >= thresholdMs {
		level := "WARN"
		if thresholdMs == 0 {
			level = "DEBUG"
		}
		Log(level, fmt.Sprintf("%s (%d ms)", message, elapsedMs))
	}
	return elapsedMs
}

func GetEnv(key string, fallback string) string {
	value, exists := os.LookupEnv(key)
	if exists {
		return value
	}
	return fallback
}

func GetEnvInt64(key string, fallback int64) int64 {
	value, exists := os.LookupEnv(key)
	if exists {
		i64, err := strconv.ParseInt(value, 10, 64)
		PanicIfErr(err)
		return i64
	}
	return fallback
}

func GetBoolEnv(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if exists {
		return IsTrue(value)
	}
	return fallback
}

// IsTrue accepts the same spellings as the env getters (true, y, yes).
func IsTrue(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case
		"true",
		"y",
		"yes":
		return true
	}
	return false
}

func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

type StoreProps map[string]string

func ReadPropertiesFile(path string) (StoreProps, error) {
	props := StoreProps{}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Ignore comment lines
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if equal := strings.Index(line, "="); equal >= 0 {
			if key := strings.TrimSpace(line[:equal]); len(key) > 0 {
				value := ""
				if len(line) > equal {
					value = strings.TrimSpace(line[equal+1:])
				}
				props[key] = value
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return props, nil
}
