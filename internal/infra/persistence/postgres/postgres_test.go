package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond}

	assert.Zero(t, poolWait(prev, prev))
	assert.Equal(t, 90*time.Millisecond, poolWait(prev, sql.DBStats{WaitCount: 5, WaitDuration: 100 * time.Millisecond}))
}
