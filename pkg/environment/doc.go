// Package environment names the deployment environment and carries it
// through request contexts, so handlers can decide how much error detail to
// show and the logger can tag records.
package environment
