package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingUserIDKey         = "user_id"
	LoggingSortFieldKey      = "sort_by"
	LoggingEventKey          = "event"
	LoggingQueueKey          = "queue"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"
	LoggingFilePathKey       = "file_path"
	LoggingRecordCountKey    = "record_count"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"
)
