package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"meama/internal/auth"
	"meama/internal/identity"
	"meama/internal/ratelimiter"
	"meama/internal/sheet"
	"meama/internal/store"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/speps/go-hashids/v2"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	// Default values
	defaultRequests := 20
	defaultEnabled := true

	// Retrieve request count with error handling
	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	// Retrieve enabled flag with error handling
	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            time.Minute,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	// Configure the encoder to be a console encoder with color
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder // This adds color to log levels (INFO, WARN, ERROR)

	// Create a console encoder with the custom configuration
	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	// Create a log level (you can set your own level here)
	level := zapcore.InfoLevel

	// Use zapcore.NewCore to write logs to standard output (stdout) with color
	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	// Create and return a new logger instance
	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "1.0.0"

//	@title			Meama Collect Barista API
//	@description	API for the Meama Collect barista directory: spreadsheet-backed profiles, ratings and reviews.

//	@contact.name	API Support

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	refreshInterval := 5 * time.Minute
	if val := os.Getenv("SHEET_REFRESH_INTERVAL"); val != "" {
		parsed, err := time.ParseDuration(val)
		if err != nil {
			log.Fatalf("Invalid value for SHEET_REFRESH_INTERVAL: %v", err)
		}
		refreshInterval = parsed
	}

	cfg := config{
		addr:   os.Getenv("ADDR"),
		env:    os.Getenv("ENV"),
		apiURL: os.Getenv("EXTERNAL_URL"),
		sheet: sheetConfig{
			endpoint:        os.Getenv("SHEET_ENDPOINT"),
			timeout:         30 * time.Second,
			refreshInterval: refreshInterval,
		},
		identityDB: os.Getenv("IDENTITY_DB_PATH"),
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
			admin: adminConfig{
				user:         os.Getenv("ADMIN_USER"),
				passwordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			},
			token: tokenConfig{
				refreshSecret:   os.Getenv("AUTH_TOKEN_REFRESH_SECRET"),
				secret:          os.Getenv("AUTH_TOKEN_SECRET"),
				accessTokenExp:  time.Hour,          // 1 hour
				refreshTokenExp: time.Hour * 24 * 3, // 3 days
				iss:             "Meama",
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
	}
	if cfg.addr == "" {
		cfg.addr = ":8080"
	}
	if cfg.identityDB == "" {
		cfg.identityDB = "identity.db"
	}

	// Logger
	// Create the logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Device-local identity database
	kv, err := identity.OpenSQLiteKV(cfg.identityDB)
	if err != nil {
		logger.Fatal(err)
	}
	defer kv.Close()
	logger.Info("identity database opened")

	//storage
	store := store.NewStorage()

	// Spreadsheet client
	sheetClient := sheet.NewClient(cfg.sheet.endpoint, cfg.sheet.timeout)
	if !sheetClient.Configured() {
		logger.Warn("SHEET_ENDPOINT not set, serving sample data in demonstration mode")
	}

	//cloudinary, optional: without it review images travel as data URLs
	var cld *cloudinary.Cloudinary
	if cloudinaryUrl := os.Getenv("CLOUDINARY_URL"); cloudinaryUrl != "" {
		cld, err = cloudinary.NewFromURL(cloudinaryUrl)
		if err != nil {
			logger.Fatal(err)
		}
	}

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// Authenticator
	jwtAuthenticator := auth.NewJWTAuthenticator(
		cfg.auth.token.secret,
		cfg.auth.token.refreshSecret,
		cfg.auth.token.iss,
		cfg.auth.token.iss,
		cfg.auth.token.accessTokenExp,
		cfg.auth.token.refreshTokenExp,
	)

	// Temp review ids, visibly non-canonical until the next sheet refresh
	hd := hashids.NewData()
	hd.Salt = cfg.auth.token.secret
	hd.MinLength = 8
	tempIDs, err := hashids.NewWithData(hd)
	if err != nil {
		logger.Fatal(err)
	}

	app := &application{
		config:        cfg,
		logger:        logger,
		store:         store,
		sheet:         sheetClient,
		identity:      identity.New(kv),
		cld:           cld,
		authenticator: jwtAuthenticator,
		rateLimiter:   rateLimiter,
		tempIDs:       tempIDs,
	}

	// Load the directory before serving, then keep it fresh in the background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.refreshDirectory(ctx)
	go app.refreshSheetEvery(ctx, cfg.sheet.refreshInterval)

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("directory", expvar.Func(func() any {
		return app.store.Baristas.Stats()
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
