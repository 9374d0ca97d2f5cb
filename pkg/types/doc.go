// Package types defines the binder data model, placement configuration,
// collaborator interfaces, and standard error types for the PkmnBindr
// layout core.
// Implements: prd001-binder-core (GridConfig, Binder, CapacityInfo,
// ExpansionOption, HistoryEntry, error types);
//
//	docs/ARCHITECTURE § Data Model, § External Interfaces.
package types
