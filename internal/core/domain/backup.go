package domain

import (
	"strconv"
	"time"
)

// BackupInfix separates the input path from the backup timestamp.
const BackupInfix = ".bak."

// BackupPath returns the backup location for input at time t:
// <input>.bak.<unix seconds>.
func BackupPath(input string, t time.Time) string {
	return input + BackupInfix + strconv.FormatInt(t.Unix(), 10)
}
