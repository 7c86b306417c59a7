package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	AuthJWKSURL        string
	AuthIssuer         string
	AuthAudience       string
	AuthHSSecret       string
	AuthWebhookSecret  string
	GoogleClientID     string
	MidtransServerKey  string
	MidtransProduction bool
	MentorSessionFee   int
	AppLocation        *time.Location
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	AuthJWKSURL = GetEnv("AUTH_JWKS_URL")
	AuthIssuer = GetEnv("AUTH_ISSUER")
	AuthAudience = GetEnv("AUTH_AUDIENCE")
	AuthHSSecret = GetEnv("AUTH_HS_SECRET")
	AuthWebhookSecret = GetEnv("AUTH_WEBHOOK_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	if AuthJWKSURL == "" && AuthHSSecret == "" {
		log.Println("❌ Neither AUTH_JWKS_URL nor AUTH_HS_SECRET is set, bearer tokens cannot be verified!")
	} else if AuthJWKSURL == "" {
		log.Println("⚠️ AUTH_JWKS_URL not set, falling back to HS256 shared secret")
	} else {
		log.Println("✅ AUTH_JWKS_URL loaded")
	}

	if AuthWebhookSecret == "" {
		log.Println("⚠️ AUTH_WEBHOOK_SECRET not set, identity webhook is disabled")
	}

	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	MidtransProduction = strings.EqualFold(GetEnv("MIDTRANS_ENV"), "production")
	if MidtransServerKey == "" {
		log.Println("⚠️ MIDTRANS_SERVER_KEY not set, paid mentor bookings are disabled")
	}

	MentorSessionFee = 499
	if raw := GetEnv("MENTOR_SESSION_FEE_INR"); raw != "" {
		if fee, err := strconv.Atoi(raw); err == nil && fee >= 0 {
			MentorSessionFee = fee
		} else {
			log.Printf("⚠️ Invalid MENTOR_SESSION_FEE_INR %q, using default %d", raw, MentorSessionFee)
		}
	}

	loadLocation()
}

// loadLocation resolves APP_TIMEZONE. Daily quizzes, streaks and "today"
// boundaries are all anchored to this zone, not the server zone.
func loadLocation() {
	tz := GetEnv("APP_TIMEZONE", "Asia/Kolkata")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("⚠️ Invalid APP_TIMEZONE %q, falling back to UTC: %v", tz, err)
		loc = time.UTC
	}
	AppLocation = loc
	log.Printf("✅ App timezone: %s", loc)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Info,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	} else {
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
