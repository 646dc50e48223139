// Package config provides configuration parsing for kview applications.
//
// The configuration is stored in kview.json, or kview.yaml when no JSON file
// exists, at the application root. This package handles loading, saving,
// defaulting and validating it.
//
// # Configuration File Structure
//
//	{
//	  "name": "showcase",
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 8080,
//	    "wsPath": "/_kview/ws",
//	    "pingInterval": "30s"
//	  },
//	  "render": { "sync": false },
//	  "metrics": { "enabled": true, "path": "/metrics" },
//	  "export": { "dir": "dist", "bucket": "my-site", "region": "eu-west-1" },
//	  "log": { "level": "debug", "format": "json" }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    errors.Fprint(os.Stderr, err, errors.Style{})
//	    os.Exit(1)
//	}
//	logger := cfg.Logger(os.Stderr)
package config
