package catalog

// Config locates the catalog file.
type Config struct {
	// Path is the YAML catalog file.
	Path string `mapstructure:"path" default:"configs/catalog.yaml"`
}
