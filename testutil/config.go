package testutil

import "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/config"

// ReadConfig reads config file for test.

func ReadConfig() {
	config.ReadConfig(config.ReadConfigOption{
		AppEnv: config.Test,
	})
}
