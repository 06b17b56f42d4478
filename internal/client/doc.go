// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the recipe API.
//
// Each invocation runs one command (login, recipes, favorite, ...) against
// an [adapter.RecipeAPI] and prints the result as indented JSON.
package client
