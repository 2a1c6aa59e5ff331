// Package hcl checks that a Terraform file is something the documentation
// pipeline can handle before any text processing happens. It parses the file
// with the HashiCorp HCL parser and reports problems as hcl.Diagnostics, so
// errors point at the offending line and column.
package hcl
