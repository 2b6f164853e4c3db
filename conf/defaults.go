package conf

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Data defaults
	v.SetDefault("data.delimiter", ",")
	v.SetDefault("data.cache_dir", defaultCacheDir())

	// Tree defaults
	v.SetDefault("tree.max_depth", 3)
	v.SetDefault("tree.referer_page_size", 10)
}
