package numpager

import (
	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type gormMockFn func() (string, *gorm.DB, sqlmock.Sqlmock, error)

// gormMocks lists the dialects every query test runs against.
var gormMocks = []gormMockFn{
	newGORMMySQLMock,
	newGORMPostgresMock,
}

func openGORMMock(dialect string, open func(conn gorm.ConnPool) gorm.Dialector) (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	db, err := gorm.Open(open(mockDB), &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return dialect, db.Debug(), mock, nil
}

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("mysql", func(conn gorm.ConnPool) gorm.Dialector {
		return mysql.New(mysql.Config{
			Conn:                      conn,
			SkipInitializeWithVersion: true,
		})
	})
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("postgres", func(conn gorm.ConnPool) gorm.Dialector {
		return postgres.New(postgres.Config{
			Conn: conn,
		})
	})
}
