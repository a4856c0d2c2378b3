// Package core provides small generic slice helpers and shared configuration
// for attribute preparation.
package core
