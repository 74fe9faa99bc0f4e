// Package service implements the business logic layer.
package service

// ServiceConfig service layer configuration.
type ServiceConfig struct {
	User UserServiceConfig
}

// UserServiceConfig user service configuration.
type UserServiceConfig struct {
	// RegisterIsEnable gates account registration.
	RegisterIsEnable bool
}
