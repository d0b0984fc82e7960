package config

import (
	"os"
	"path/filepath"

	"github.com/go-i2p/go-monotime/lib/util"
	"github.com/go-i2p/logger"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const MONOTIME_BASE_DIR = ".go-monotime"

func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.go-monotime/
		viper.AddConfigPath(BuildMonotimeDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Load defaults
	setDefaults()

	// handle config file creating it if needed
	handleConfigFile()
}

func setDefaults() {
	// Sampler defaults
	viper.SetDefault("sampler.interval", DefaultMonitorConfig().Interval)
	viper.SetDefault("sampler.warn_threshold", DefaultMonitorConfig().WarnThreshold)

	// NTP defaults
	viper.SetDefault("ntp.enabled", DefaultNTPConfig.Enabled)
	viper.SetDefault("ntp.server", DefaultNTPConfig.Server)
	viper.SetDefault("ntp.timeout", DefaultNTPConfig.Timeout)
	viper.SetDefault("ntp.interval", DefaultNTPConfig.Interval)

	// Metrics defaults
	viper.SetDefault("metrics.listen", DefaultMetricsConfig.Listen)
}

// NewMonitorConfigFromViper creates a new MonitorConfig from current viper
// settings. Reads fresh values on every call, so callers re-reading after a
// SIGHUP get the updated configuration.
func NewMonitorConfigFromViper() *MonitorConfig {
	ntpConfig := &NTPConfig{
		Enabled:  viper.GetBool("ntp.enabled"),
		Server:   viper.GetString("ntp.server"),
		Timeout:  viper.GetDuration("ntp.timeout"),
		Interval: viper.GetDuration("ntp.interval"),
	}

	metricsConfig := &MetricsConfig{
		Listen: viper.GetString("metrics.listen"),
	}

	return &MonitorConfig{
		Interval:      viper.GetDuration("sampler.interval"),
		WarnThreshold: viper.GetDuration("sampler.warn_threshold"),
		NTP:           ntpConfig,
		Metrics:       metricsConfig,
	}
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	// Write current config file
	if err := viper.WriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildMonotimeDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func BuildMonotimeDirPath() string {
	return filepath.Join(util.UserHome(), MONOTIME_BASE_DIR)
}
