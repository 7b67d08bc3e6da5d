// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package passwords rates the strength of stored passwords.
//
// The store never decides on its own what a strong password is: it asks a
// [Classifier], injected at construction, and stores the answer next to the
// entry. [NewClassifier] returns the default heuristic.
package passwords

import (
	"unicode"

	"github.com/MKhiriev/go-vaultage/models"
)

// Classifier maps a password to its strength indication.
type Classifier interface {
	Classify(password string) models.PasswordStrength
}

// ClassifierFunc adapts a plain function to [Classifier].
type ClassifierFunc func(password string) models.PasswordStrength

// Classify implements [Classifier].
func (f ClassifierFunc) Classify(password string) models.PasswordStrength {
	return f(password)
}

// Score thresholds of the default classifier.
const (
	strongScore = 80
	mediumScore = 60
)

type scoreClassifier struct{}

// NewClassifier returns the default classifier. It scores a password by
// letter diversity (repeated characters count less every time they occur)
// plus a bonus for every character class present beyond the first, and buckets
// the score: above 80 is STRONG, above 60 is MEDIUM, the rest WEAK.
func NewClassifier() Classifier {
	return scoreClassifier{}
}

// Classify implements [Classifier].
func (scoreClassifier) Classify(password string) models.PasswordStrength {
	switch s := Score(password); {
	case s > strongScore:
		return models.PasswordStrengthStrong
	case s > mediumScore:
		return models.PasswordStrengthMedium
	default:
		return models.PasswordStrengthWeak
	}
}

// Score returns the raw score used by the default classifier.
func Score(password string) int {
	if password == "" {
		return 0
	}

	var score float64
	seen := make(map[rune]int)
	for _, r := range password {
		seen[r]++
		score += 5.0 / float64(seen[r])
	}

	var digits, lower, upper, other bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digits = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case !isWordRune(r):
			other = true
		}
	}

	variations := 0
	for _, present := range []bool{digits, lower, upper, other} {
		if present {
			variations++
		}
	}
	score += float64(variations-1) * 10

	return int(score)
}

// isWordRune mirrors the \w class: letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
