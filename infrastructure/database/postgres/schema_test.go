package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingConn struct {
	Queryer
	calls int
}

func (c *failingConn) Close() error               { return nil }
func (c *failingConn) Ping(context.Context) error { return nil }
func (c *failingConn) RunInTransaction(context.Context, func(*sql.Tx) error) error {
	c.calls++
	return errors.New("banco indisponível")
}

func TestEnsureSchema_TransactionError(t *testing.T) {
	conn := &failingConn{}

	err := EnsureSchema(context.Background(), conn)

	assert.EqualError(t, err, "banco indisponível")
	assert.Equal(t, 1, conn.calls)
}

func TestSchemaStatements(t *testing.T) {
	assert.Len(t, schemaStatements, 2)
	assert.Contains(t, schemaStatements[0], "UNIQUE (dataset_id, scope, salesperson, month)")
}
