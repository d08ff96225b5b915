// Package storage keeps the window preferences between launches.
package storage

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appName = "chessframe"
	homeEnv = "CHESSFRAME_HOME"
)

// DataDir returns the directory holding the preference database:
// $CHESSFRAME_HOME when set, otherwise chessframe/ under the user config
// directory. The directory is created if needed.
func DataDir() (string, error) {
	dir := os.Getenv(homeEnv)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, appName)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// DatabaseDir returns the badger directory inside DataDir.
func DatabaseDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}

// ResolveAssetDir makes an asset directory given on the command line
// absolute, so the saved preference still points at it when the program
// is started from another directory. A leading "~/" is expanded and an
// empty dir resolves to DefaultAssetDir.
func ResolveAssetDir(dir string) (string, error) {
	if dir == "" {
		dir = DefaultAssetDir
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return filepath.Abs(dir)
}
