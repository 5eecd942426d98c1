/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrConfiguration is returned when a binding declaration is invalid
	ErrConfiguration = errors.New("invalid binding configuration")

	// ErrTemplateSyntax is returned when a declared template is malformed
	ErrTemplateSyntax = errors.New("malformed template")

	// ErrUnresolvedPlaceholder is returned when a template placeholder has no
	// matching entry in the binding context
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")

	// ErrSettingNotFound is returned when a %name% token references an absent
	// configuration setting
	ErrSettingNotFound = errors.New("setting not found")

	// ErrConversion is returned when a record cannot be mapped to a typed entity
	ErrConversion = errors.New("record conversion failed")

	// ErrFilterSyntax is returned when a filter expression cannot be parsed
	ErrFilterSyntax = errors.New("malformed filter expression")
)

// ConfigurationError represents an invalid binding declaration.
// It is raised at registration time, never during an invocation.
type ConfigurationError struct {
	Option  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("binding option %q: %s", e.Option, e.Message)
	}
	return fmt.Sprintf("binding configuration: %s", e.Message)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// SyntaxError represents a malformed placeholder in a template string.
type SyntaxError struct {
	Template string
	Offset   int
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template %q: %s at offset %d", e.Template, e.Message, e.Offset)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrTemplateSyntax
}

// UnresolvedPlaceholderError names the placeholder missing from the binding context.
type UnresolvedPlaceholderError struct {
	Placeholder string
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("no value for placeholder %q in binding context", e.Placeholder)
}

func (e *UnresolvedPlaceholderError) Is(target error) bool {
	return target == ErrUnresolvedPlaceholder
}

// SettingNotFoundError names the configuration key missing from the settings provider.
type SettingNotFoundError struct {
	Key string
}

func (e *SettingNotFoundError) Error() string {
	return fmt.Sprintf("setting %q not found", e.Key)
}

func (e *SettingNotFoundError) Is(target error) bool {
	return target == ErrSettingNotFound
}

// ConversionError represents a record property that could not be mapped
// to a typed entity property.
type ConversionError struct {
	Property string
	Cause    error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot convert property %q: %v", e.Property, e.Cause)
	}
	return fmt.Sprintf("cannot convert property %q", e.Property)
}

func (e *ConversionError) Unwrap() error { return e.Cause }

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// FilterSyntaxError represents an unparseable filter expression.
type FilterSyntaxError struct {
	Expression string
	Offset     int
	Message    string
}

func (e *FilterSyntaxError) Error() string {
	return fmt.Sprintf("filter %q: %s at offset %d", e.Expression, e.Message, e.Offset)
}

func (e *FilterSyntaxError) Is(target error) bool {
	return target == ErrFilterSyntax
}

// Helper functions for creating errors

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(option, message string) error {
	return &ConfigurationError{Option: option, Message: message}
}

// NewSyntaxError creates a new SyntaxError
func NewSyntaxError(template string, offset int, message string) error {
	return &SyntaxError{Template: template, Offset: offset, Message: message}
}

// NewUnresolvedPlaceholderError creates a new UnresolvedPlaceholderError
func NewUnresolvedPlaceholderError(placeholder string) error {
	return &UnresolvedPlaceholderError{Placeholder: placeholder}
}

// NewSettingNotFoundError creates a new SettingNotFoundError
func NewSettingNotFoundError(key string) error {
	return &SettingNotFoundError{Key: key}
}

// NewConversionError creates a new ConversionError
func NewConversionError(property string, cause error) error {
	return &ConversionError{Property: property, Cause: cause}
}

// NewFilterSyntaxError creates a new FilterSyntaxError
func NewFilterSyntaxError(expression string, offset int, message string) error {
	return &FilterSyntaxError{Expression: expression, Offset: offset, Message: message}
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsTemplateSyntax checks if an error is a template syntax error
func IsTemplateSyntax(err error) bool {
	return errors.Is(err, ErrTemplateSyntax)
}

// IsUnresolvedPlaceholder checks if an error is an unresolved placeholder error
func IsUnresolvedPlaceholder(err error) bool {
	return errors.Is(err, ErrUnresolvedPlaceholder)
}

// IsSettingNotFound checks if an error is a missing setting error
func IsSettingNotFound(err error) bool {
	return errors.Is(err, ErrSettingNotFound)
}

// IsConversion checks if an error is a record conversion error
func IsConversion(err error) bool {
	return errors.Is(err, ErrConversion)
}

// IsFilterSyntax checks if an error is a filter syntax error
func IsFilterSyntax(err error) bool {
	return errors.Is(err, ErrFilterSyntax)
}
