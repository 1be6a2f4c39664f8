package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// RendererConfig contains rendering deployment policy
type RendererConfig struct {
	// VendorExtensions enables the non-3GPP Sh-IMS-Data extension block.
	VendorExtensions bool `yaml:"vendorExtensions"`
	// DefaultAgeOfLocation is used when a serving node is known but the
	// record carries no location age. Minutes.
	DefaultAgeOfLocation int `yaml:"defaultAgeOfLocation" validate:"gte=0"`
}

// StoreConfig contains subscriber provisioning configuration
type StoreConfig struct {
	// SubscribersFile is the YAML provisioning file loaded at startup.
	SubscribersFile string `yaml:"subscribersFile"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Renderer RendererConfig `yaml:"renderer"`
	Store    StoreConfig    `yaml:"store"`
}
