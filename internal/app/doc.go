// Package app contains the core application logic. It defines the App
// struct, its configuration, and the run lifecycle that turns one Terraform
// file into one documentation artifact, decoupled from the CLI entrypoint.
package app
