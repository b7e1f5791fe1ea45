package entities

import (
	"slices"
	"strings"
)

// ServiceField names an editable attribute of a Service.
type ServiceField string

const (
	ServiceFieldName        ServiceField = "name"
	ServiceFieldDescription ServiceField = "description"
	ServiceFieldPrice       ServiceField = "price"
)

// Service is a single offering line. Price is free text ("from $1,200", "on request").
//
// ID is opaque and generated when the row is added; rows are never addressed by position.
type Service struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Price       string `json:"price" yaml:"price"`
}

func (s Service) ItemID() string { return s.ID }

// With returns a copy with field replaced. Unknown fields report false and leave s as is.
func (s Service) With(field ServiceField, value string) (Service, bool) {
	switch field {
	case ServiceFieldName:
		s.Name = value
	case ServiceFieldDescription:
		s.Description = value
	case ServiceFieldPrice:
		s.Price = value
	default:
		return s, false
	}
	return s, true
}

// PackageField names an editable scalar attribute of a PricingPackage.
type PackageField string

const (
	PackageFieldName        PackageField = "name"
	PackageFieldDescription PackageField = "description"
	PackageFieldPrice       PackageField = "price"
)

// PricingPackage bundles several inclusions under one price.
type PricingPackage struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       string   `json:"price" yaml:"price"`
	Inclusions  []string `json:"inclusions" yaml:"inclusions"`
}

func (p PricingPackage) ItemID() string { return p.ID }

func (p PricingPackage) With(field PackageField, value string) (PricingPackage, bool) {
	switch field {
	case PackageFieldName:
		p.Name = value
	case PackageFieldDescription:
		p.Description = value
	case PackageFieldPrice:
		p.Price = value
	default:
		return p, false
	}
	return p, true
}

// WithInclusions replaces the inclusion list, dropping blank entries.
func (p PricingPackage) WithInclusions(inclusions []string) PricingPackage {
	out := make([]string, 0, len(inclusions))
	for _, inc := range inclusions {
		if v := strings.TrimSpace(inc); v != "" {
			out = append(out, v)
		}
	}
	p.Inclusions = out
	return p
}

// SpecialtySet is a set of specialty tags kept in sorted order, so two sets with the same
// members are equal by value regardless of the order they were toggled in.
type SpecialtySet []string

func (s SpecialtySet) Contains(v string) bool {
	_, found := slices.BinarySearch(s, v)
	return found
}

// Canonical returns a sorted, de-duplicated copy (never nil).
func (s SpecialtySet) Canonical() SpecialtySet {
	out := make(SpecialtySet, 0, len(s))
	for _, v := range s {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
