// Package models defines the data structures shared by the sheet
// interpretation stages: enum catalogs, resolved schemas, converted records
// and batch results.
package models
