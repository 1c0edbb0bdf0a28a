// Package config provides configuration parsing for routefs projects.
//
// The configuration is stored at the project root in routefs.json, or in
// routefs.yaml, routefs.yml or routefs.toml. A project without a
// configuration file uses the defaults.
//
// # Configuration File Structure
//
//	{
//	  "name": "my-api-project",
//	  "port": 3000,
//	  "paths": {
//	    "api": "api"
//	  },
//	  "routes": {
//	    "extension": ".go",
//	    "entry": "router.go",
//	    "ignore": ["internal/**"]
//	  },
//	  "client": {
//	    "output": "apiClient.js",
//	    "baseURL": "http://localhost:3000"
//	  },
//	  "docs": {
//	    "output": "API_DOCS.md"
//	  },
//	  "openapi": {
//	    "output": "openapi.json",
//	    "title": "My API",
//	    "version": "1.0.0"
//	  },
//	  "publish": {
//	    "target": "s3://my-bucket/api",
//	    "region": "us-east-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    return err
//	}
//
//	opts, err := cfg.DiscoverOptions()
//	tree, err := routes.Discover(cfg.APIPath(), opts...)
package config
