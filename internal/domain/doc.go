// Package domain re-exports the core data model and collaborator contracts
// from its types and interfaces subpackages, so the rest of the module can
// import a single, stable path.
package domain
