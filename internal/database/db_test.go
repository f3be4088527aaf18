package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN("gamecho", "secret", "db.local", "3306", "gamecho")

	assert.True(t, strings.HasPrefix(dsn, "gamecho:secret@tcp(db.local:3306)/gamecho?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "loc=UTC")
	// Keyed updates distinguish "no such user" from "matched, unchanged"
	// via RowsAffected, which requires matched-row counting.
	assert.Contains(t, dsn, "clientFoundRows=true")
}

func TestBuildDSN_EmptyPassword(t *testing.T) {
	dsn := buildDSN("gamecho", "", "localhost", "3306", "gamecho")
	assert.True(t, strings.HasPrefix(dsn, "gamecho@tcp(localhost:3306)/gamecho?"), dsn)
}
