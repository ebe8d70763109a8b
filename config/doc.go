// Package config reads the settings of the lending CLI from the environment.
//
// Load first loads an optional .env file with godotenv (variables already set in the environment win),
// then reads:
//
//	LENDING_LOG_LEVEL              debug | info | warn | error (default info)
//	LENDING_LOG_FORMAT             text | json (default text)
//	LENDING_SEED                   e.g. book1,book2=userX,book3 (default: the reference catalog)
//	LENDING_OBSERVABILITY_ENABLED  true | false (default false)
package config
