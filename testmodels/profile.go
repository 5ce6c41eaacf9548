/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels holds shared entity types used by tests across the
// library.
package testmodels

import "github.com/go-openapi/strfmt"

// UserProfile is a representative settings payload with nested and
// time-typed fields.
type UserProfile struct {
	ID          *string          `json:"ID"`
	DisplayName *string          `json:"DisplayName"`
	Language    string           `json:"Language,omitempty"`
	Favorites   []string         `json:"Favorites,omitempty"`
	CreatedAt   *strfmt.DateTime `json:"CreatedAt"`
	UpdatedAt   *strfmt.DateTime `json:"UpdatedAt"`
}

// WindowState is a small composite-style payload.
type WindowState struct {
	Width     int  `json:"Width" yaml:"width"`
	Height    int  `json:"Height" yaml:"height"`
	Maximized bool `json:"Maximized" yaml:"maximized"`
}
