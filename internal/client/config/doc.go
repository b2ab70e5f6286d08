// Package config provides configuration loading for the eldercare terminal
// client.
//
// Sources are applied in order, later ones taking precedence:
//  1. Defaults (LoadDefaults)
//  2. Environment, optionally seeded from a .env file (-env or ./.env)
//  3. JSON file (-c or -config)
//  4. Command-line flags (-a, -f, -r, -l)
package config
