// Package envvar exposes helpers for reading typed configuration overrides from the environment.
package envvar

import (
	"os"
	"strconv"
	"strings"

	"github.com/omnioperator/omnilog/log"
)

// GetString returns the trimmed value of the environmental variable varName, if the env var is unset or blank it will
// return "", false.
func GetString(varName string) (string, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return "", false
	}

	env = strings.TrimSpace(env)

	return env, env != ""
}

// GetInt returns the int value of the environmental variable varName if the env var is not an int or empty it will
// return 0, false.
func GetInt(varName string) (int, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return 0, false
	}

	val, err := strconv.Atoi(env)
	if err != nil {
		return 0, false
	}

	return val, true
}

// GetFloat64 returns the float64 value of the environmental variable varName if the env var is not a number or empty it
// will return 0, false.
func GetFloat64(varName string) (float64, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return 0, false
	}

	val, err := strconv.ParseFloat(env, 64)
	if err != nil {
		return 0, false
	}

	return val, true
}

// GetBool returns the boolean value of the environmental variable varName if the env var is empty or not a boolean it
// will return false, false.
func GetBool(varName string) (bool, bool) {
	val, ok := os.LookupEnv(varName)
	if !ok {
		return false, false
	}

	ret, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}

	return ret, true
}

// GetLevel returns the log level named by the environmental variable varName, see log.ParseLevel. If the env var is
// empty or not a known level it will return 0, false.
func GetLevel(varName string) (log.Level, bool) {
	val, ok := os.LookupEnv(varName)
	if !ok {
		return 0, false
	}

	level, err := log.ParseLevel(val)
	if err != nil {
		return 0, false
	}

	return level, true
}
