package usecase

import (
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"messenger-hub/config/logger"
	"messenger-hub/entity"
	"messenger-hub/uow"
)

type testEnv struct {
	db       *gorm.DB
	manager  *uow.Manager
	accounts AccountUsecase
	users    UserUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "t_",
			SingularTable: true,
		},
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Account{}, &entity.User{}, &entity.Chat{}, &entity.Message{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)
	validate := validator.New()
	manager := uow.NewManager(db, logger.NewLogger())

	return &testEnv{
		db:       db,
		manager:  manager,
		accounts: NewAccountUsecase(manager, validate, log),
		users:    NewUserUsecase(manager, validate, log),
	}
}

func (env *testEnv) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, env.db.Model(model).Count(&count).Error)
	return count
}

func strPtr(s string) *string {
	return &s
}
