package config

// Config contains all configuration grouped by domain
type Config struct {
	Magento MagentoConfig
	Logging LoggingConfig
}

// MagentoConfig parameterizes the Magento REST API client.
// It is built once at startup and passed by value; nothing mutates it afterwards.
type MagentoConfig struct {
	// Base URL of Magento, for example: https://magento.test
	BaseURL string `envconfig:"MAGENTO_BASE_URL" json:"base_url" validate:"required,url"`

	// Only differs from "rest" when the API is mounted elsewhere
	BasePath string `envconfig:"MAGENTO_BASE_PATH" json:"base_path" validate:"required"`

	// Store view the requests target
	StoreCode string `envconfig:"MAGENTO_STORE_CODE" json:"store_code" validate:"required"`

	Version string `envconfig:"MAGENTO_API_VERSION" json:"version" validate:"required"`

	// Access token of a Magento integration
	AccessToken Secret `envconfig:"MAGENTO_ACCESS_TOKEN" json:"access_token" validate:"required"`

	// Request and connection timeouts in seconds. Not read from the environment.
	Timeout        int `ignored:"true" json:"timeout" validate:"gt=0"`
	ConnectTimeout int `ignored:"true" json:"connect_timeout" validate:"gt=0"`
}

// Logging settings stay raw strings - the logger handles defaults during initialization
type LoggingConfig struct {
	Level       string `envconfig:"LOG_LEVEL"`
	Format      string `envconfig:"LOG_FORMAT"`
	ServiceName string `envconfig:"SERVICE_NAME"`
	Dir         string `envconfig:"LOG_DIR"`
}
