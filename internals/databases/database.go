package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	buildingModel "ktx_backend/internals/features/campus/buildings/model"
	roomModel "ktx_backend/internals/features/campus/rooms/model"
	semesterModel "ktx_backend/internals/features/campus/semesters/model"
	notificationModel "ktx_backend/internals/features/home/notifications/model"
	supportModel "ktx_backend/internals/features/home/support_requests/model"
	invoiceModel "ktx_backend/internals/features/housing/invoices/model"
	registrationModel "ktx_backend/internals/features/housing/registrations/model"
	authModel "ktx_backend/internals/features/users/auth/model"
	managerModel "ktx_backend/internals/features/users/managers/model"
	studentModel "ktx_backend/internals/features/users/students/model"
)

var DB *gorm.DB

func ConnectDB() {
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=ktx&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")

	migrate()
}

func migrate() {
	if err := DB.AutoMigrate(
		&authModel.User{},
		&authModel.TokenBlacklist{},
		&studentModel.Student{},
		&managerModel.Manager{},
		&buildingModel.Building{},
		&roomModel.Room{},
		&semesterModel.Semester{},
		&registrationModel.Registration{},
		&invoiceModel.Invoice{},
		&notificationModel.Notification{},
		&notificationModel.NotificationRecipient{},
		&notificationModel.NotificationRead{},
		&supportModel.SupportRequest{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	// AutoMigrate cannot express a partial unique index, so create it raw.
	// One live (non-rejected) registration per student per semester — this is
	// what makes the intake eligibility check authoritative under concurrency.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_registrations_student_semester_live
		ON registrations (registration_student_id, registration_semester_id)
		WHERE registration_status <> 'REJECTED'
	`).Error; err != nil {
		log.Fatalf("migrate: partial unique index failed: %v", err)
	}
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// =======================
// GORM LOGGER
// =======================

type dbLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func newGormLogger() gormLogger.Interface {
	return &dbLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *dbLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *dbLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *dbLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *dbLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *dbLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
