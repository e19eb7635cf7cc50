// Package config loads application configuration from a YAML file, an
// optional .env file and the process environment.
//
// Files are looked up under ./cmd/<name>/, ./config/ and the working
// directory unless given explicitly. Environment variables override file
// values: with prefix VIEWDEMO, VIEWDEMO_LOGGING_LEVEL sets logging.level
// and VIEWDEMO_DEMO_TAKE_COUNT sets demo.take_count.
//
//	var cfg MyConfig // embeds config.ServiceConfig
//	if err := config.Load("viewdemo", &cfg, config.WithConfigFile(path)); err != nil {
//	    return err
//	}
package config
