package config

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	Redis struct {
		Enabled  bool
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Enabled    bool
		Port       string
		Host       string
		Username   string
		Password   string
		UseSSL     bool
		BucketName string
	}
)

type (
	InternalConfig struct {
		App      App
		Auth     Auth
		RabbitMQ AppRabbitMQ
		Minio    AppMinio
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		EndpointPrefix             string
		DataFile                   string
		MaxRequests                int
		ShutdownTimeout            int
		WriteRequestsPerSecond     int
		WriteBlockTimeInSeconds    int
		LockTTLInSeconds           int
		LockWaitTimeoutInSeconds   int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
	}

	// Auth holds the credential map, loaded once at startup and read-only
	// afterwards.
	Auth struct {
		Users map[string]string
	}

	AppRabbitMQ struct {
		PatientEventQueue string
	}

	AppMinio struct {
		SnapshotPrefix string
	}
)
