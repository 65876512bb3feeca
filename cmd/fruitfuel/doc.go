// Command fruitfuel drives the storefront core from the terminal.
//
//	fruitfuel catalog --plan weekly        # showcase for a Weekly Boost member
//	fruitfuel catalog --search berry       # search the full catalogue
//	fruitfuel plans                        # list membership plans
//	fruitfuel simulate session.json        # replay a scripted session
//	fruitfuel metrics -w 4 a.json b.json   # replay concurrently, then dump Prometheus metrics
//
// Configuration comes from config/app.json, .env and the environment; see
// package config for the keys.
package main
