package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	mcore "github.com/Akilan7123/DreamPixel/mocks/port/core"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(`  select * from "users"`))
	assert.Equal(t, "UPDATE", extractQueryType(`UPDATE "transactions" SET payment=true`))
	assert.Equal(t, "", extractQueryType(`BEGIN`))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "users", extractTableName(`SELECT * FROM "users" WHERE id = 1`))
	assert.Equal(t, "transactions", extractTableName(`INSERT INTO "transactions" ("id") VALUES (1)`))
	assert.Equal(t, "transactions", extractTableName(`UPDATE "transactions" SET "payment"=true`))
	assert.Equal(t, "", extractTableName(`SET TRANSACTION ISOLATION LEVEL SERIALIZABLE`))
}

func TestDatabaseLogger_RedactsCredentials(t *testing.T) {
	mockLogger := mcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug("SQL Query", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["sql"] == "[redacted]" && fields["table"] == "users"
	})).Once()

	l := NewDatabaseLogger(mockLogger, nil, "info")
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `INSERT INTO "users" ("id","password_hash") VALUES ('x','$2a$10$abc')`, 1
	}, nil)
}

func TestDatabaseLogger_NotFoundIsNotAnError(t *testing.T) {
	mockLogger := mcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug("SQL Query", mock.Anything).Once()

	l := NewDatabaseLogger(mockLogger, nil, "info")
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT * FROM "transactions" WHERE id = 'x'`, 0
	}, gorm.ErrRecordNotFound)
}

func TestDatabaseLogger_Errors(t *testing.T) {
	mockLogger := mcore.NewMockLogger(t)
	mockLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "boom"
	})).Once()

	l := NewDatabaseLogger(mockLogger, nil, "warn")
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `UPDATE "users" SET credit_balance = credit_balance + 100`, 0
	}, errors.New("boom"))
}

func TestDatabaseLogger_Silent(t *testing.T) {
	mockLogger := mcore.NewMockLogger(t)

	l := NewDatabaseLogger(mockLogger, nil, "silent")
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT 1`, 1
	}, errors.New("ignored"))
}
