package config

// HTTPConfig contains the local console HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the console listener to. The console is a
	// single-operator tool, so it binds loopback by default.
	Addr string `env:"HTTP_ADDR" envDefault:"127.0.0.1:8787"`

	// BaseURL is the base URL of the console (used for absolute redirects).
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://127.0.0.1:8787"`
}
