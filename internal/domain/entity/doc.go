// Package entity defines the core domain entities and validation logic for the application.
// It contains the business objects Media, Post and Publication, the derived
// publication state, and the error taxonomy shared by every use case.
package entity
