package config

import (
	"fmt"
	"patient-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:    utils.GetEnvBool("MINIO_ENABLED", false),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "patient-snapshots"),
		},
	}
}

func NewInternalConfig() (*InternalConfig, error) {
	users, err := ParseCredentialMap(utils.GetEnvString("USERS", "{}"))
	if err != nil {
		return nil, err
	}

	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			DataFile:                   utils.GetEnvString("APP_DATA_FILE", "data.json"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			WriteRequestsPerSecond:     utils.GetEnvInt("APP_WRITE_REQUESTS_PER_SECOND", 5),
			WriteBlockTimeInSeconds:    utils.GetEnvInt("APP_WRITE_BLOCK_TIME_IN_SECONDS", 10),
			LockTTLInSeconds:           utils.GetEnvInt("APP_LOCK_TTL_IN_SECONDS", 10),
			LockWaitTimeoutInSeconds:   utils.GetEnvInt("APP_LOCK_WAIT_TIMEOUT_IN_SECONDS", 5),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		Auth: Auth{
			Users: users,
		},
		RabbitMQ: AppRabbitMQ{
			PatientEventQueue: utils.GetEnvString("APP_RABBITMQ_PATIENT_EVENT_QUEUE", "patient_events"),
		},
		Minio: AppMinio{
			SnapshotPrefix: utils.GetEnvString("APP_MINIO_SNAPSHOT_PREFIX", "patients"),
		},
	}, nil
}

// ParseCredentialMap decodes the USERS value, a JSON object of user ID to
// plaintext password.
func ParseCredentialMap(raw string) (map[string]string, error) {
	users := make(map[string]string)
	if raw == "" {
		return users, nil
	}
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("USERS must be a JSON object of user id to password: %w", err)
	}
	return users, nil
}
