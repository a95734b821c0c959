// Package config manages user-level settings stored at ~/.hostkit/config.yaml.
// Every key can be overridden with a HOSTKIT_-prefixed environment variable,
// for example HOSTKIT_RESOURCES for the resources directory used by locate.
package config
